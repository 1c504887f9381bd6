package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{bookingCommands: bookingCommands}
}

func (h *BookingHandler) BookRoom(c *gin.Context) {
	var req reqdto.BookRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}

	domainReq, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.bookingCommands.PerformBooking(c.Request.Context(), domainReq)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingResult(result))
}
