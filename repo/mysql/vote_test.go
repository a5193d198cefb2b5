package mysql

import (
	"testing"

	"github.com/Xushengqwer/community_service/models/enums"
)

func votePtr(v enums.VoteType) *enums.VoteType { return &v }

// TestResolveVoteToggle 穷举投票切换矩阵 (现有状态 × 请求方向)。
func TestResolveVoteToggle(t *testing.T) {
	cases := []struct {
		name      string
		existing  *enums.VoteType
		requested enums.VoteType
		wantOp    VoteOp
		wantState *enums.VoteType
		wantNet   int64
		wantUp    int64
		wantDown  int64
	}{
		{"首次赞同", nil, enums.VoteUp, VoteOpInsert, votePtr(enums.VoteUp), 1, 1, 0},
		{"首次反对", nil, enums.VoteDown, VoteOpInsert, votePtr(enums.VoteDown), -1, 0, 1},
		{"重复赞同撤销", votePtr(enums.VoteUp), enums.VoteUp, VoteOpDelete, nil, -1, -1, 0},
		{"重复反对撤销", votePtr(enums.VoteDown), enums.VoteDown, VoteOpDelete, nil, 1, 0, -1},
		{"赞同换反对", votePtr(enums.VoteUp), enums.VoteDown, VoteOpFlip, votePtr(enums.VoteDown), -2, -1, 1},
		{"反对换赞同", votePtr(enums.VoteDown), enums.VoteUp, VoteOpFlip, votePtr(enums.VoteUp), 2, 1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveVoteToggle(tc.existing, tc.requested)
			if got.Op != tc.wantOp {
				t.Errorf("Op = %v, want %v", got.Op, tc.wantOp)
			}
			switch {
			case tc.wantState == nil && got.NewState != nil:
				t.Errorf("NewState = %v, want nil", *got.NewState)
			case tc.wantState != nil && got.NewState == nil:
				t.Errorf("NewState = nil, want %v", *tc.wantState)
			case tc.wantState != nil && got.NewState != nil && *got.NewState != *tc.wantState:
				t.Errorf("NewState = %v, want %v", *got.NewState, *tc.wantState)
			}
			if got.NetDelta != tc.wantNet {
				t.Errorf("NetDelta = %d, want %d", got.NetDelta, tc.wantNet)
			}
			if got.UpDelta != tc.wantUp || got.DownDelta != tc.wantDown {
				t.Errorf("UpDelta/DownDelta = %d/%d, want %d/%d", got.UpDelta, got.DownDelta, tc.wantUp, tc.wantDown)
			}
		})
	}
}

// TestResolveVoteToggleRoundTrip 验证任意两次连续操作后净值变化与
// 事实状态保持一致：净值变化量等于按最终状态重新计算的净值差。
func TestResolveVoteToggleRoundTrip(t *testing.T) {
	score := func(s *enums.VoteType) int64 {
		if s == nil {
			return 0
		}
		if *s == enums.VoteUp {
			return 1
		}
		return -1
	}

	states := []*enums.VoteType{nil, votePtr(enums.VoteUp), votePtr(enums.VoteDown)}
	requests := []enums.VoteType{enums.VoteUp, enums.VoteDown}

	for _, existing := range states {
		for _, req := range requests {
			out := ResolveVoteToggle(existing, req)
			if got, want := out.NetDelta, score(out.NewState)-score(existing); got != want {
				t.Errorf("existing=%v requested=%v: NetDelta = %d, 与状态差 %d 不一致", existing, req, got, want)
			}
			if got, want := out.NetDelta, out.UpDelta-out.DownDelta; got != want {
				t.Errorf("existing=%v requested=%v: NetDelta = %d, 与分列增量差 %d 不一致", existing, req, got, want)
			}
		}
	}
}
