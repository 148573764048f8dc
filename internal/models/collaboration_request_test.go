package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestStatusTerminal(t *testing.T) {
	tests := []struct {
		status   RequestStatus
		terminal bool
	}{
		{RequestStatusPending, false},
		{RequestStatusAccepted, true},
		{RequestStatusRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.terminal, tt.status.Terminal())
		})
	}
}

func TestRequestTarget(t *testing.T) {
	var req CollaborationRequest

	req.SetTarget(ProjectTarget(3))
	target, err := req.Target()
	require.NoError(t, err)
	assert.Equal(t, RequestTarget{Kind: TargetProject, ID: 3}, target)
	assert.Nil(t, req.PostID)

	req.SetTarget(PostTarget(9))
	target, err = req.Target()
	require.NoError(t, err)
	assert.Equal(t, RequestTarget{Kind: TargetPost, ID: 9}, target)
	assert.Nil(t, req.ProjectID)

	req.ProjectID = req.PostID
	_, err = req.Target()
	assert.ErrorIs(t, err, ErrInvalidRequestTarget)
}
