package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelationOf(t *testing.T) {
	t.Parallel()

	task := &Task{
		OwnerID: "owner",
		SharedWith: []Share{
			{UserID: "reader", Permission: PermissionRead},
			{UserID: "editor", Permission: PermissionEdit},
		},
	}

	require.Equal(t, RelationOwner, RelationOf("owner", task))
	require.Equal(t, RelationShared(PermissionRead), RelationOf("reader", task))
	require.Equal(t, RelationShared(PermissionEdit), RelationOf("editor", task))
	require.Equal(t, RelationNone, RelationOf("stranger", task))
	require.Equal(t, RelationNone, RelationOf("", task))
	require.Equal(t, RelationNone, RelationOf("owner", nil))

	t.Run("owner wins over a share entry", func(t *testing.T) {
		odd := &Task{OwnerID: "owner", SharedWith: []Share{{UserID: "owner", Permission: PermissionRead}}}
		require.True(t, RelationOf("owner", odd).IsOwner())
		require.True(t, CanDelete("owner", odd))
	})
}

func TestDecisionTable(t *testing.T) {
	t.Parallel()

	task := &Task{
		OwnerID: "owner",
		SharedWith: []Share{
			{UserID: "reader", Permission: PermissionRead},
			{UserID: "editor", Permission: PermissionEdit},
		},
	}

	cases := []struct {
		user                      string
		view, edit, delete, share bool
	}{
		{"owner", true, true, true, true},
		{"editor", true, true, false, false},
		{"reader", true, false, false, false},
		{"stranger", false, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.user, func(t *testing.T) {
			require.Equal(t, tc.view, CanView(tc.user, task))
			require.Equal(t, tc.edit, CanEdit(tc.user, task))
			require.Equal(t, tc.delete, CanDelete(tc.user, task))
			require.Equal(t, tc.share, CanShare(tc.user, task))
		})
	}
}

func TestCanViewMatchesMembership(t *testing.T) {
	t.Parallel()

	users := []string{"u1", "u2", "u3", "u4"}
	perms := []Permission{PermissionRead, PermissionEdit}

	// Every owner and every subset of the remaining users as sharees.
	for _, owner := range users {
		for mask := 0; mask < 1<<len(users); mask++ {
			task := &Task{OwnerID: owner}
			shared := map[string]bool{}
			for i, u := range users {
				if mask&(1<<i) != 0 && u != owner {
					task.ShareWith(u, perms[i%2], testNow)
					shared[u] = true
				}
			}
			for _, u := range append(users, "outsider") {
				want := u == owner || shared[u]
				require.Equal(t, want, CanView(u, task), "owner=%s mask=%b user=%s", owner, mask, u)
			}
		}
	}
}
