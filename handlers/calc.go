package handlers

import (
	"net/http"

	"github.com/LovationAdmin/calc-api/middleware"
	"github.com/LovationAdmin/calc-api/services"
	"github.com/LovationAdmin/calc-api/utils"

	"github.com/gin-gonic/gin"
)

type CalcHandler struct {
	Registry *services.Registry
}

func NewCalcHandler(registry *services.Registry) *CalcHandler {
	return &CalcHandler{Registry: registry}
}

// Calculate returns the handler for one registered calculator. Bodies that
// cannot be read or parsed are treated as an empty object, so the endpoint
// always answers 200 with defaults rather than rejecting input.
func (h *CalcHandler) Calculate(name string) gin.HandlerFunc {
	calc, ok := h.Registry.Get(name)
	if !ok {
		panic("handlers: unknown calculator " + name)
	}

	return func(c *gin.Context) {
		requestID := middleware.GetRequestID(c)

		body, err := c.GetRawData()
		if err != nil {
			utils.SafeWarn("[Calc] %s - unreadable body for request %s: %v", name, requestID, err)
			body = nil
		}

		payload := services.DecodePayload(body)
		utils.LogCalculation(name, requestID, numericFields(payload))

		c.JSON(http.StatusOK, calc(payload))
	}
}

// List returns the names of every available calculator
func (h *CalcHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"calculators": h.Registry.Names()})
}

func numericFields(p services.Payload) map[string]float64 {
	amounts := make(map[string]float64, len(p))
	for key, value := range p {
		if _, ok := value.(float64); ok {
			amounts[key] = p.Number(key)
		}
	}
	return amounts
}
