package moderation

import (
	"testing"

	"github.com/Xushengqwer/community_service/models/enums"
)

func TestCanMutate(t *testing.T) {
	owner := Actor{UserID: "user-1", Role: enums.RoleUser}
	stranger := Actor{UserID: "user-2", Role: enums.RoleUser}
	admin := Actor{UserID: "admin-1", Role: enums.RoleAdmin}
	anonymous := Actor{UserID: "", Role: enums.RoleUser}

	cases := []struct {
		name    string
		actor   Actor
		ownerID string
		action  Action
		want    bool
	}{
		{"所有者编辑自己的内容", owner, "user-1", ActionEditOwn, true},
		{"非所有者编辑他人内容", stranger, "user-1", ActionEditOwn, false},
		{"管理员编辑任意内容", admin, "user-1", ActionEditOwn, true},
		{"所有者流转话题状态", owner, "user-1", ActionSetStatus, true},
		{"非所有者流转话题状态", stranger, "user-1", ActionSetStatus, false},
		{"管理员流转任意话题状态", admin, "user-1", ActionSetStatus, true},
		{"普通用户执行管理操作", owner, "user-1", ActionAdmin, false},
		{"管理员执行管理操作", admin, "user-1", ActionAdmin, true},
		{"匿名用户编辑内容", anonymous, "", ActionEditOwn, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanMutate(tc.actor, tc.ownerID, tc.action); got != tc.want {
				t.Fatalf("CanMutate(%+v, %q, %v) = %v, want %v", tc.actor, tc.ownerID, tc.action, got, tc.want)
			}
		})
	}
}
