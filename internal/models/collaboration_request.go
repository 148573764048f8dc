package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

// Terminal reports whether no further transition is allowed from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected
}

// ErrInvalidRequestTarget is returned when a request points at both a project and a post, or at neither.
var ErrInvalidRequestTarget = errors.New("collaboration request must target exactly one of project or post")

type TargetKind string

const (
	TargetProject TargetKind = "project"
	TargetPost    TargetKind = "post"
)

// RequestTarget identifies what a collaboration request is about.
type RequestTarget struct {
	Kind TargetKind
	ID   uint64
}

// ProjectTarget builds a target for a project.
func ProjectTarget(id uint64) RequestTarget {
	return RequestTarget{Kind: TargetProject, ID: id}
}

// PostTarget builds a target for a post.
func PostTarget(id uint64) RequestTarget {
	return RequestTarget{Kind: TargetPost, ID: id}
}

type CollaborationRequest struct {
	ID         uint64        `gorm:"primarykey" json:"id"`
	SenderID   uint64        `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint64        `gorm:"not null;index:idx_requests_receiver_status,priority:1" json:"receiver_id"`
	ProjectID  *uint64       `gorm:"index" json:"project_id"`
	PostID     *uint64       `gorm:"index" json:"post_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending';index:idx_requests_receiver_status,priority:2" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`

	// Relations
	Sender   User     `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver User     `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
	Project  *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"project,omitempty"`
	Post     *Post    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}

// SetTarget points the request at t, clearing the other side.
func (r *CollaborationRequest) SetTarget(t RequestTarget) {
	id := t.ID
	r.ProjectID, r.PostID = nil, nil
	switch t.Kind {
	case TargetProject:
		r.ProjectID = &id
	case TargetPost:
		r.PostID = &id
	}
}

// Target returns the tagged target of the request.
func (r *CollaborationRequest) Target() (RequestTarget, error) {
	switch {
	case r.ProjectID != nil && r.PostID == nil:
		return ProjectTarget(*r.ProjectID), nil
	case r.PostID != nil && r.ProjectID == nil:
		return PostTarget(*r.PostID), nil
	default:
		return RequestTarget{}, ErrInvalidRequestTarget
	}
}

func (r *CollaborationRequest) BeforeCreate(tx *gorm.DB) error {
	if _, err := r.Target(); err != nil {
		return err
	}
	if r.Status == "" {
		r.Status = RequestStatusPending
	}
	return nil
}
