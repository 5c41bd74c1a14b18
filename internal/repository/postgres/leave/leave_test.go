package leave

import (
	"net/http"
	"testing"
	"time"

	"hrm/backend/foundation/web"
	"hrm/backend/internal/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pending", entity.LeaveStatusPending},
		{"PENDING", entity.LeaveStatusPending},
		{"pending", entity.LeaveStatusPending},
		{"approved", entity.LeaveStatusApproved},
		{"APPROVED", entity.LeaveStatusApproved},
		{"Rejected", entity.LeaveStatusRejected},
		{"rejected", entity.LeaveStatusRejected},
	}

	for _, tc := range cases {
		got, err := normalizeStatus(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := normalizeStatus("cancelled")
	assert.Error(t, err)
}

func TestNormalizeType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"VACATION", entity.LeaveTypeVacation},
		{"vacation", entity.LeaveTypeVacation},
		{"sick", entity.LeaveTypeSick},
		{"Personal", entity.LeaveTypePersonal},
		{"other", entity.LeaveTypeOther},
	}

	for _, tc := range cases {
		got, err := normalizeType(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := normalizeType("sabbatical")
	assert.Error(t, err)
}

func statusOf(err error) int {
	var webErr *web.Error
	if errors.As(err, &webErr) {
		return webErr.Status
	}
	return 0
}

func TestOwnerGuard(t *testing.T) {
	pending := entity.LeaveStatusPending
	approved := entity.LeaveStatusApproved
	owner := 10
	stranger := 99

	t.Run("owner with pending request passes", func(t *testing.T) {
		record := entity.Leave{EmployeeID: &owner, Status: &pending}
		assert.NoError(t, ownerGuard(record, owner))
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		record := entity.Leave{EmployeeID: &owner, Status: &pending}
		err := ownerGuard(record, stranger)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(err))
	})

	t.Run("ownership is checked before state", func(t *testing.T) {
		// A stranger probing a decided request sees 403, not 400.
		record := entity.Leave{EmployeeID: &owner, Status: &approved}
		err := ownerGuard(record, stranger)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(err))
	})

	t.Run("owner cannot touch a decided request", func(t *testing.T) {
		record := entity.Leave{EmployeeID: &owner, Status: &approved}
		err := ownerGuard(record, owner)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(err))
	})

	t.Run("missing owner is forbidden", func(t *testing.T) {
		record := entity.Leave{Status: &pending}
		err := ownerGuard(record, owner)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(err))
	})
}

func TestApprovalStamp(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

	stamp := approvalStamp(entity.LeaveStatusApproved, now)
	require.NotNil(t, stamp)
	assert.Equal(t, now, *stamp)

	assert.Nil(t, approvalStamp(entity.LeaveStatusRejected, now))
	assert.Nil(t, approvalStamp(entity.LeaveStatusPending, now))
}
