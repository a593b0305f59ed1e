package handlers

import (
	"net/http"

	"ClinicAdmin/middlewares"
	"ClinicAdmin/models"
	"ClinicAdmin/repositories"
	"ClinicAdmin/services"
	"ClinicAdmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service *services.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service *services.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{service: service, log: log}
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	h.renderList(c, http.StatusOK, "")
}

func (h *RoomHandler) renderList(c *gin.Context, status int, message string) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load rooms", err)
		return
	}
	render(c, status, "rooms.html", "Rooms", gin.H{"Rooms": rows, "Error": message})
}

func (h *RoomHandler) NewRoom(c *gin.Context) {
	render(c, http.StatusOK, "add_room.html", "Add room", nil)
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var in models.RoomInput
	if err := c.ShouldBind(&in); err != nil {
		middlewares.HttpError(c, h.log, http.StatusBadRequest, "Invalid room form", err)
		return
	}
	if _, err := h.service.Create(c.Request.Context(), in); err != nil {
		if utils.IsValidationError(err) {
			render(c, http.StatusBadRequest, "add_room.html", "Add room", gin.H{"Error": err.Error()})
			return
		}
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to create room", err)
		return
	}
	redirect(c, "/rooms")
}

func (h *RoomHandler) renderAssignForm(c *gin.Context, roomID int64, status int, message string) {
	name, candidates, err := h.service.AssignmentForm(c.Request.Context(), roomID)
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load room assignment form", err)
		return
	}
	render(c, status, "assign_room.html", "Assign room", gin.H{
		"RoomID":       roomID,
		"RoomName":     name,
		"Appointments": candidates,
		"Error":        message,
	})
}

func (h *RoomHandler) NewAssignment(c *gin.Context) {
	roomID, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	h.renderAssignForm(c, roomID, http.StatusOK, "")
}

func (h *RoomHandler) CreateAssignment(c *gin.Context) {
	roomID, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	var in models.RoomAssignmentInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderAssignForm(c, roomID, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.service.Assign(c.Request.Context(), roomID, in); err != nil {
		h.log.Warn("room not assigned", zap.Int64("room_id", roomID), zap.Int64("appt_id", in.AppointmentID), zap.Error(err))
		h.renderAssignForm(c, roomID, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/rooms")
}

func (h *RoomHandler) RoomSchedule(c *gin.Context) {
	roomID, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	name, rows, err := h.service.Schedule(c.Request.Context(), roomID)
	if err != nil {
		middlewares.HttpError(c, h.log, http.StatusInternalServerError, "Failed to load room schedule", err)
		return
	}
	render(c, http.StatusOK, "room_schedule.html", "Room schedule", gin.H{
		"RoomID":   roomID,
		"RoomName": name,
		"Schedule": rows,
	})
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, h.log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.log.Warn("room delete failed", zap.Int64("room_id", id), zap.Error(err))
		h.renderList(c, failureStatus(err), repositories.UserMessage(err))
		return
	}
	redirect(c, "/rooms")
}
