package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type HotelHandler struct {
	hotelCommands commands.HotelCommands
	hotelQueries  queries.HotelQueries
}

func NewHotelHandler(hotelCommands commands.HotelCommands, hotelQueries queries.HotelQueries) *HotelHandler {
	return &HotelHandler{
		hotelCommands: hotelCommands,
		hotelQueries:  hotelQueries,
	}
}

func (h *HotelHandler) AddHotel(c *gin.Context) {
	var req reqdto.AddHotelRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		bindError(c, bindErr)
		return
	}

	added, err := h.hotelCommands.AddHotel(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromHotel(added))
}

func (h *HotelHandler) GetHotelsInCity(c *gin.Context) {
	city := c.Param("city")

	hotels, err := h.hotelQueries.FindHotelsInCity(c.Request.Context(), city)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromHotels(hotels))
}
