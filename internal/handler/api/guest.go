package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GuestHandler struct {
	guestCommands  commands.GuestCommands
	bookingQueries queries.BookingQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, bookingQueries queries.BookingQueries) *GuestHandler {
	return &GuestHandler{
		guestCommands:  guestCommands,
		bookingQueries: bookingQueries,
	}
}

func (h *GuestHandler) RegisterGuest(c *gin.Context) {
	var req reqdto.RegisterGuestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}

	registered, err := h.guestCommands.RegisterGuest(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromGuest(registered))
}

func (h *GuestHandler) GetBookedRooms(c *gin.Context) {
	guestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		bindError(c, err)
		return
	}

	var req reqdto.BookedRoomsRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}
	date, err := req.ParsedDate()
	if err != nil {
		respondError(c, err)
		return
	}

	booked, err := h.bookingQueries.FindBookedRooms(c.Request.Context(), guestID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookedRooms(booked))
}
