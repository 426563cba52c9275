package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/minjae-kw/meal-recommendation/internal/geo"
	"github.com/minjae-kw/meal-recommendation/internal/history"
	"github.com/minjae-kw/meal-recommendation/internal/recommend"
	"github.com/minjae-kw/meal-recommendation/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, weatherSvc *weather.Service, recommender *recommend.Service, histStore history.Store) {
	v1 := app.Group("/api/v1")

	v1.Get("/recommendations", func(c *fiber.Ctx) error {
		var req recommendQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		weekday, err := resolveWeekday(req.Weekday)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		cond := weatherSvc.CurrentConditions(c.Context(), geo.Coordinate{Lat: req.Lat, Lng: req.Lng})

		top, err := recommender.TopCategories(cond, req.Satiety, weekday)
		if err != nil {
			if errors.Is(err, recommend.ErrInsufficientCategories) {
				return fiber.NewError(fiber.StatusInternalServerError, "category catalog unavailable")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"weather":         cond,
			"weekday":         weekday.String(),
			"satietyLevel":    req.Satiety,
			"recommendations": top,
		})
	})

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		var req coordinateQuery
		if err := req.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loc := geo.Coordinate{Lat: req.Lat, Lng: req.Lng}
		grid, err := geo.ToGrid(loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"grid":       grid,
			"conditions": weatherSvc.CurrentConditions(c.Context(), loc),
		})
	})

	v1.Post("/history", func(c *fiber.Ctx) error {
		var req historyRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		weekday, err := resolveWeekday(req.Weekday)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		kind := history.Kind(req.Kind)
		if kind == "" {
			kind = history.KindQuery
		}

		entry := history.Entry{
			Weekday:        weekday,
			RawText:        req.Text,
			Kind:           kind,
			Category:       req.Category,
			RestaurantName: req.RestaurantName,
		}
		if err := histStore.Append(entry); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to record history entry")
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	v1.Get("/history", func(c *fiber.Ctx) error {
		var weekday *time.Weekday
		if s := c.Query("weekday"); s != "" {
			d, err := history.ParseWeekday(s)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			weekday = &d
		}

		entries, err := histStore.ReadAll(weekday)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read history")
		}

		out := make([]historyEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, historyEntryResponse{Entry: e, Weekday: e.Weekday.String()})
		}
		return c.JSON(fiber.Map{"entries": out})
	})
}

// coordinateQuery holds the query parameters identifying a position.
// Bounds mirror the supported projection domain.
type coordinateQuery struct {
	Lat float64 `validate:"required,gte=33,lte=38.9"`
	Lng float64 `validate:"required,gte=124,lte=132"`
}

func (q *coordinateQuery) bind(c *fiber.Ctx) error {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		return errors.New("lat and lng query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return errors.New("lng must be a number")
	}

	q.Lat = lat
	q.Lng = lng
	return nil
}

// recommendQuery holds the query parameters for the recommendation endpoint.
type recommendQuery struct {
	coordinateQuery
	Satiety int    `validate:"required,min=1,max=3"`
	Weekday string `validate:"omitempty"`
}

func (q *recommendQuery) bind(c *fiber.Ctx) error {
	if err := q.coordinateQuery.bind(c); err != nil {
		return err
	}

	satietyStr := c.Query("satiety")
	if satietyStr == "" {
		return errors.New("satiety query parameter is required")
	}
	satiety, err := strconv.Atoi(satietyStr)
	if err != nil {
		return errors.New("satiety must be an integer between 1 and 3")
	}

	q.Satiety = satiety
	q.Weekday = c.Query("weekday")
	return nil
}

// historyEntryResponse adds the weekday name to the serialized entry.
type historyEntryResponse struct {
	history.Entry
	Weekday string `json:"weekday"`
}

// historyRequest is the POST body for recording one interaction.
type historyRequest struct {
	Weekday        string `json:"weekday" validate:"omitempty"`
	Text           string `json:"text" validate:"required"`
	Kind           string `json:"kind" validate:"omitempty,oneof=query selection"`
	Category       string `json:"category"`
	RestaurantName string `json:"restaurantName"`
}

// resolveWeekday defaults to the current weekday when none was given.
func resolveWeekday(s string) (time.Weekday, error) {
	if s == "" {
		return time.Now().Weekday(), nil
	}
	return history.ParseWeekday(s)
}
