package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomCommands: roomCommands,
		roomQueries:  roomQueries,
	}
}

func (h *RoomHandler) AddRoom(c *gin.Context) {
	var req reqdto.AddRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}

	added, err := h.roomCommands.AddRoom(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoom(added))
}

func (h *RoomHandler) GetFreeRooms(c *gin.Context) {
	var req reqdto.FreeRoomsRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}

	hotelID, err := req.ParsedHotelID()
	if err != nil {
		respondError(c, err)
		return
	}
	start, end, err := req.ParsedRange()
	if err != nil {
		respondError(c, err)
		return
	}

	free, err := h.roomQueries.FindFreeRooms(c.Request.Context(), hotelID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRooms(free))
}
