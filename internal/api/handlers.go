package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"petquest/internal/catalog"
	"petquest/internal/coach"
	"petquest/internal/engine"
	"petquest/internal/social"
)

type stateResponse struct {
	engine.State
	Mood            engine.Mood        `json:"mood"`
	Celebrating     bool               `json:"celebrating"`
	Undoable        bool               `json:"undoable"`
	ActivePet       catalog.Pet        `json:"activePet"`
	ActiveTheme     catalog.Theme      `json:"activeTheme"`
	ActiveAccessory *catalog.Accessory `json:"activeAccessory,omitempty"`
}

func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	resp := stateResponse{
		State:       s.engine.State(),
		Mood:        s.engine.Mood(),
		Celebrating: s.engine.Celebrating(),
		Undoable:    s.engine.Undoable(),
		ActivePet:   s.engine.ActivePet(),
		ActiveTheme: s.engine.ActiveTheme(),
	}
	if acc, ok := s.engine.ActiveAccessory(); ok {
		resp.ActiveAccessory = &acc
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"pets":          catalog.ShopPets(),
		"milestonePets": catalog.MilestonePets(),
		"accessories":   catalog.Accessories(),
		"themes":        catalog.Themes(),
		"achievements":  catalog.Achievements(),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	if err := s.engine.ExportYAML(w); err != nil {
		s.log.ErrorContext(r.Context(), "export failed", "error", err)
	}
}

type addTaskRequest struct {
	Title      string `json:"title"`
	Deadline   string `json:"deadline"`
	CategoryID string `json:"categoryId"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	deadline, err := engine.ParseDeadline(req.Deadline, s.engine.Now(), s.engine.Location())
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	task, err := s.engine.AddTask(r.Context(), req.Title, deadline, req.CategoryID)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, task)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.CompleteTask(r.Context(), chi.URLParam(r, "taskID"))
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	if res == nil {
		s.respondJSON(w, http.StatusOK, map[string]any{"completed": false})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"completed":       true,
		"taskId":          res.TaskID,
		"earned":          res.Earned,
		"stats":           res.Stats,
		"newAchievements": res.NewAchievements,
		"newPets":         res.NewPets,
	})
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.DeleteTask(r.Context(), chi.URLParam(r, "taskID")); err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request) {
	ok, err := s.engine.UndoCompleteTask(r.Context())
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"undone": ok})
}

func (s *Server) handleBuy(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemID")
	var err error
	switch chi.URLParam(r, "kind") {
	case "pets":
		err = s.engine.UnlockPet(r.Context(), id)
	case "accessories":
		err = s.engine.BuyAccessory(r.Context(), id)
	case "themes":
		err = s.engine.BuyTheme(r.Context(), id)
	default:
		s.respondError(w, http.StatusNotFound, "unknown shop section")
		return
	}
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"ok": true, "points": s.engine.Points()})
}

type equipRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleEquip(w http.ResponseWriter, r *http.Request) {
	var req equipRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var err error
	switch chi.URLParam(r, "kind") {
	case "pet":
		err = s.engine.SetActivePet(r.Context(), req.ID)
	case "accessory":
		err = s.engine.SetActiveAccessory(r.Context(), req.ID)
	case "theme":
		err = s.engine.SetActiveTheme(r.Context(), req.ID)
	default:
		s.respondError(w, http.StatusNotFound, "unknown equip slot")
		return
	}
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.engine.Categories())
}

type addCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := s.engine.AddCategory(r.Context(), req.Name, req.Color)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.DeleteCategory(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetFriends(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"userCode": s.engine.UserCode(),
		"friends":  s.engine.Friends(),
	})
}

type addFriendRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleAddFriend(w http.ResponseWriter, r *http.Request) {
	var req addFriendRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	f, err := s.engine.AddFriend(r.Context(), req.Code)
	if err != nil {
		s.respondEngineError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]any{
		"friend":  f,
		"message": "Added " + f.Name + "!",
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	window := social.ParseWindow(r.URL.Query().Get("window"))
	s.respondJSON(w, http.StatusOK, map[string]any{
		"window":  window,
		"entries": s.engine.Leaderboard(window),
	})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	now := s.engine.Now()
	q := s.coach.Quote(r.Context(), coach.QuoteRequest{
		PetName:     s.engine.ActivePet().Name,
		UrgentCount: engine.UrgentCount(s.engine.Tasks(), now),
		Happy:       s.engine.Mood() == engine.MoodHappy,
	})
	s.respondJSON(w, http.StatusOK, map[string]string{"quote": q})
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	tasks := s.engine.Tasks()
	titles := make([]string, 0, len(tasks))
	for _, t := range tasks {
		titles = append(titles, t.Title)
	}
	s.respondJSON(w, http.StatusOK, map[string]any{
		"suggestions": s.coach.Suggestions(r.Context(), titles),
	})
}

// respondEngineError maps validation rejections to 4xx and everything else to 500.
func (s *Server) respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	var pe engine.PurchaseError
	switch {
	case errors.Is(err, engine.ErrUnknownItem):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &pe):
		s.respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, engine.ErrEmptyTitle),
		errors.Is(err, engine.ErrEmptyCategoryName),
		errors.Is(err, engine.ErrEmptyCode),
		errors.Is(err, engine.ErrSelfCode):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, engine.ErrDuplicateFriend):
		s.respondError(w, http.StatusConflict, err.Error())
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}

