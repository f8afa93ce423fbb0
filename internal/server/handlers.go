package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/post"
)

type handlers struct {
	store *alert.Store
	form  *post.Form
	now   func() time.Time
}

type errorResponse struct {
	Error   string `json:"error"`
	AlertID string `json:"alert_id,omitempty"`
}

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "healthy", Time: h.now()})
}

type alertsResponse struct {
	Alerts []alert.Alert `json:"alerts"`
	Count  int           `json:"count"`
}

func (h *handlers) listAlerts(c echo.Context) error {
	alerts := h.store.Snapshot()
	return c.JSON(http.StatusOK, alertsResponse{Alerts: alerts, Count: len(alerts)})
}

// RaiseAlertRequest is the body of POST /api/alerts. Severity defaults to
// info; TimeoutMS defaults to the store's default timeout and is capped at the
// largest millisecond count a time.Duration can hold.
type RaiseAlertRequest struct {
	Message   string `json:"message" validate:"required"`
	Severity  string `json:"severity"`
	TimeoutMS *int64 `json:"timeout_ms" validate:"omitempty,min=0,max=9223372036854"`
}

type raiseAlertResponse struct {
	ID string `json:"id"`
}

func (h *handlers) raiseAlert(c echo.Context) error {
	var req RaiseAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	severity := alert.Severity(req.Severity)
	if severity == "" {
		severity = alert.SeverityInfo
	}

	var id string
	if req.TimeoutMS != nil {
		id = h.store.RaiseFor(req.Message, severity, time.Duration(*req.TimeoutMS)*time.Millisecond)
	} else {
		id = h.store.Raise(req.Message, severity)
	}

	return c.JSON(http.StatusCreated, raiseAlertResponse{ID: id})
}

func (h *handlers) removeAlert(c echo.Context) error {
	h.store.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Text string `json:"text"`
}

type createPostResponse struct {
	post.Post
	AlertID string `json:"alert_id"`
}

func (h *handlers) createPost(c echo.Context) error {
	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	res, err := h.form.Submit(c.Request().Context(), req.Text)
	switch {
	case errors.Is(err, post.ErrEmptyPost), errors.Is(err, post.ErrPostTooLong):
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), AlertID: res.AlertID})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: post.MsgFailed, AlertID: res.AlertID})
	}

	return c.JSON(http.StatusCreated, createPostResponse{Post: res.Post, AlertID: res.AlertID})
}

func (h *handlers) listPosts(c echo.Context) error {
	posts, err := h.form.Posts(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to list posts"})
	}
	return c.JSON(http.StatusOK, posts)
}
