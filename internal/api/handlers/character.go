package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dom/hxh-catalog/internal/domain"
	"github.com/dom/hxh-catalog/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

const (
	msgRequiredFields  = "Name and image_url required"
	msgNotFound        = "Character not found"
	msgInvalidBody     = "Invalid request body"
	msgCharacterDelete = "Character deleted"
)

type CharacterHandler struct {
	characterService *service.CharacterService
	log              logrus.FieldLogger
}

func NewCharacterHandler(characterService *service.CharacterService, log logrus.FieldLogger) *CharacterHandler {
	return &CharacterHandler{characterService: characterService, log: log}
}

type DeleteResponse struct {
	Message string            `json:"message"`
	Deleted *domain.Character `json:"deleted"`
}

func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterService.ListCharacters(r.Context())
	if err != nil {
		h.log.WithField("op", "character.List").WithError(err).Error("storage failure")
		writeError(w, http.StatusInternalServerError, "Failed to list characters")
		return
	}

	writeJSON(w, http.StatusOK, characters)
}

func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	character, err := h.characterService.GetCharacter(r.Context(), id)
	if err != nil {
		h.fail(w, "character.Get", id, err, "Failed to get character")
		return
	}

	writeJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	character, err := h.characterService.CreateCharacter(r.Context(), payload)
	if err != nil {
		h.fail(w, "character.Create", "", err, "Failed to create character")
		return
	}

	h.log.WithFields(logrus.Fields{"op": "character.Create", "id": character.ID}).Debug("character created")
	writeJSON(w, http.StatusCreated, character)
}

func (h *CharacterHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	character, err := h.characterService.ReplaceCharacter(r.Context(), id, payload)
	if err != nil {
		h.fail(w, "character.Replace", id, err, "Failed to update character")
		return
	}

	writeJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	character, err := h.characterService.DeleteCharacter(r.Context(), id)
	if err != nil {
		h.fail(w, "character.Delete", id, err, "Failed to delete character")
		return
	}

	writeJSON(w, http.StatusOK, DeleteResponse{Message: msgCharacterDelete, Deleted: character})
}

// fail maps service errors onto the three client-visible classes.
func (h *CharacterHandler) fail(w http.ResponseWriter, op, id string, err error, storageMsg string) {
	var fieldErr *domain.FieldError
	switch {
	case errors.Is(err, domain.ErrMissingRequiredFields):
		writeError(w, http.StatusBadRequest, msgRequiredFields)
	case errors.As(err, &fieldErr):
		writeError(w, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, domain.ErrCharacterNotFound):
		writeError(w, http.StatusNotFound, msgNotFound)
	default:
		h.log.WithFields(logrus.Fields{"op": op, "id": id}).WithError(err).Error("storage failure")
		writeError(w, http.StatusInternalServerError, storageMsg)
	}
}

func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return nil, false
	}
	return payload, true
}
