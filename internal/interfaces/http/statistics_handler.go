package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-api/internal/application/usecase"
	"github.com/jhoicas/inventario-api/pkg/logger"
)

// StatisticsHandler expone los totales del inventario (protegido).
type StatisticsHandler struct {
	uc  *usecase.StatisticsUseCase
	log *logger.Logger
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *usecase.StatisticsUseCase, log *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{uc: uc, log: log}
}

// Get godoc
// @Summary      Totales de usuarios, productos, categorías y subcategorías
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatisticsResponse
// @Router       /api/statistics [get]
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
