package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pomobar/internal/errors"
	"pomobar/internal/model"
	"pomobar/internal/repository"
	"pomobar/internal/service"
)

const defaultStatsDays = 7

type StatsHandler struct {
	engine *service.Engine
}

func NewStatsHandler(engine *service.Engine) *StatsHandler {
	return &StatsHandler{engine: engine}
}

func (h *StatsHandler) Today(c *gin.Context) {
	h.writeDay(c, h.engine.Today())
}

func (h *StatsHandler) Day(c *gin.Context) {
	date, err := repository.ParseDate(c.Param("date"))
	if err != nil {
		writeError(c, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD"))
		return
	}
	h.writeDay(c, date)
}

// Range lists stored days between from and to inclusive. Both default to a
// trailing week ending today.
func (h *StatsHandler) Range(c *gin.Context) {
	to := h.engine.Today()
	if raw := c.Query("to"); raw != "" {
		parsed, err := repository.ParseDate(raw)
		if err != nil {
			writeError(c, apperrors.BadRequest("invalid_date", "to must be YYYY-MM-DD"))
			return
		}
		to = parsed
	}

	from := ""
	if raw := c.Query("from"); raw != "" {
		parsed, err := repository.ParseDate(raw)
		if err != nil {
			writeError(c, apperrors.BadRequest("invalid_date", "from must be YYYY-MM-DD"))
			return
		}
		from = parsed
	} else {
		from = daysBefore(to, defaultStatsDays-1)
	}

	if from > to {
		writeError(c, apperrors.BadRequest("invalid_range", "from must not be after to"))
		return
	}

	days, err := h.engine.StatsRange(c.Request.Context(), from, to)
	if err != nil {
		log.Printf("stats range %s..%s: %v", from, to, err)
		writeError(c, apperrors.Internal("failed to load stats"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "days": days})
}

func (h *StatsHandler) Reset(c *gin.Context) {
	h.engine.ResetToday(c.Request.Context())
	h.writeDay(c, h.engine.Today())
}

func (h *StatsHandler) History(c *gin.Context) {
	limit := 50
	rawLimit := c.Query("limit")
	if rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	completions, err := h.engine.History(c.Request.Context(), limit)
	if err != nil {
		log.Printf("list completions: %v", err)
		writeError(c, apperrors.Internal("failed to load history"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"completions": completions})
}

func (h *StatsHandler) Completion(c *gin.Context) {
	record, err := h.engine.Completion(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, apperrors.NotFound("completion_not_found", "completion not found"))
		return
	}
	if err != nil {
		log.Printf("get completion %s: %v", c.Param("id"), err)
		writeError(c, apperrors.Internal("failed to load completion"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"completion": record})
}

func (h *StatsHandler) writeDay(c *gin.Context, date string) {
	stats, err := h.engine.DailyStats(c.Request.Context(), date)
	if err != nil {
		log.Printf("daily stats %s: %v", date, err)
		writeError(c, apperrors.Internal("failed to load stats"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

func daysBefore(date string, days int) string {
	t, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, -days).Format(model.DateLayout)
}
