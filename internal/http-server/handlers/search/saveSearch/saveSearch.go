package saveSearch

import (
	"errors"
	"net/http"
	"time"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"
	"hotelBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"log/slog"
)

type SearchRequest struct {
	Key         string    `json:"key"`
	Destination string    `json:"destination" validate:"required"`
	CheckIn     time.Time `json:"check_in" validate:"required"`
	CheckOut    time.Time `json:"check_out" validate:"required"`
	AdultCount  int       `json:"adult_count" validate:"required,min=1"`
	ChildCount  int       `json:"child_count" validate:"min=0"`
}

type SearchResponse struct {
	response.Response
	Key string `json:"key"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CriteriaSaver
type CriteriaSaver interface {
	SaveSearchCriteria(c models.SearchCriteria) (string, error)
}

func New(log *slog.Logger, criteria CriteriaSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.search.saveSearch.New"

		log = log.With(slog.String("op", op))

		var req SearchRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		key, err := criteria.SaveSearchCriteria(models.SearchCriteria{
			Key:         req.Key,
			Destination: req.Destination,
			CheckIn:     req.CheckIn,
			CheckOut:    req.CheckOut,
			AdultCount:  req.AdultCount,
			ChildCount:  req.ChildCount,
		})
		if err != nil {
			log.Error("failed to save search criteria", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save search criteria"))
			return
		}

		log.Info("search criteria saved", slog.String("key", key))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SearchResponse{
			Response: response.OK(),
			Key:      key,
		})
	}
}
