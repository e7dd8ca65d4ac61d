package controller

import (
	"bytemart-search-be/internal/dto"
	"bytemart-search-be/internal/pkg/serverutils"
	"bytemart-search-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Turn(ctx *fiber.Ctx) error
	Reset(ctx *fiber.Ctx) error
	ShowSession(ctx *fiber.Ctx) error
}

type searchController struct {
	searchService service.ISearchService
}

func NewSearchController(searchService service.ISearchService) ISearchController {
	return &searchController{
		searchService: searchService,
	}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Post("turn", c.Turn)
	h.Post("reset", c.Reset)
	h.Get("session/:id", c.ShowSession)
}

func (c *searchController) Turn(ctx *fiber.Ctx) error {
	var req dto.SearchTurnRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.searchService.ProcessTurn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process search turn", res))
}

func (c *searchController) Reset(ctx *fiber.Ctx) error {
	var req dto.ResetSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.searchService.ResetSession(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success reset session", nil))
}

func (c *searchController) ShowSession(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return serverutils.BadRequest("missing session id")
	}

	res, err := c.searchService.ShowSession(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}
