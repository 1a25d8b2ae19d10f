package domain

import "errors"

var (
	MessageSuccessAddFriend     = "friend request sent successfully"
	MessageSuccessGetFriends    = "friends retrieved successfully"
	MessageSuccessGetPending    = "pending requests retrieved successfully"
	MessageSuccessAcceptFriend  = "friend request accepted successfully"
	MessageSuccessDeclineFriend = "friend request declined successfully"
	MessageSuccessRemoveFriend  = "friend removed successfully"

	MessageFailedAddFriend     = "failed to send friend request"
	MessageFailedGetFriends    = "failed to retrieve friends"
	MessageFailedGetPending    = "failed to retrieve pending requests"
	MessageFailedAcceptFriend  = "failed to accept friend request"
	MessageFailedDeclineFriend = "failed to decline friend request"
	MessageFailedRemoveFriend  = "failed to remove friend"

	ErrFriendNotFound      = errors.New("friend not found")
	ErrFriendAlreadyExists = errors.New("already friends with this user or request pending")
	ErrFriendNotPending    = errors.New("friend request is not pending")
	ErrFriendNotAccepted   = errors.New("friend is not accepted")
)

type (
	AddFriendRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	FriendResponse struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar,omitempty"`
		Status string `json:"status"`
	}
)
