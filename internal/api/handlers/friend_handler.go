package handlers

import (
	"fridgecircle-api/domain"
	"fridgecircle-api/internal/api/presenters"
	"fridgecircle-api/pkg/friend"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FriendHandler interface {
		AddFriend(c *fiber.Ctx) error
		GetFriends(c *fiber.Ctx) error
		GetPendingRequests(c *fiber.Ctx) error
		AcceptFriendRequest(c *fiber.Ctx) error
		DeclineFriendRequest(c *fiber.Ctx) error
		RemoveFriend(c *fiber.Ctx) error
	}

	friendHandler struct {
		friendService friend.FriendService
		validator     *validator.Validate
	}
)

func NewFriendHandler(friendService friend.FriendService, validator *validator.Validate) FriendHandler {
	return &friendHandler{
		friendService: friendService,
		validator:     validator,
	}
}

func (h *friendHandler) AddFriend(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddFriendRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFriend, err)
	}

	res, err := h.friendService.AddFriend(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFriend, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddFriend)
}

func (h *friendHandler) GetFriends(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	friends, err := h.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFriends, err)
	}

	return presenters.SuccessResponse(c, friends, fiber.StatusOK, domain.MessageSuccessGetFriends)
}

func (h *friendHandler) GetPendingRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	requests, err := h.friendService.GetPendingRequests(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPending, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetPending)
}

func (h *friendHandler) AcceptFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	friendID := c.Params("id")

	if err := h.friendService.AcceptFriendRequest(c.Context(), friendID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAcceptFriend, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptFriend)
}

func (h *friendHandler) DeclineFriendRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	friendID := c.Params("id")

	if err := h.friendService.DeclineFriendRequest(c.Context(), friendID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeclineFriend, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeclineFriend)
}

func (h *friendHandler) RemoveFriend(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	friendID := c.Params("id")

	if err := h.friendService.RemoveFriend(c.Context(), friendID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveFriend, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFriend)
}
