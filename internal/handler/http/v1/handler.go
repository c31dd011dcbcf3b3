package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/config"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/models"
	"github.com/manojbhatti001/Blood-Donation-sub000/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	userService     service.UserService
	locationService service.LocationService
	requestService  service.RequestService
	documentService service.DocumentService
	tokens          TokenParser
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	userService service.UserService,
	locationService service.LocationService,
	requestService service.RequestService,
	documentService service.DocumentService,
	tokens TokenParser,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		userService:     userService,
		locationService: locationService,
		requestService:  requestService,
		documentService: documentService,
		tokens:          tokens,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondError переводит доменную ошибку в HTTP-статус:
// 400 валидация, 404 не найдено, 409 конфликт, 502 отказ провайдера, 500 хранилище/прочее
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrProvider):
		log.WithError(err).Error("Upstream provider failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream provider error"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new user
// @Description Create a new user account (donor, requester, blood bank or hospital).
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Name:  input.Name,
		Email: input.Email,
		Phone: input.Phone,
		Role:  input.Role,
	}
	if err := h.userService.Register(c.Request.Context(), user, input.Password); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange email and password for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token, User: ModelToUserResponse(user)})
}

// @Summary Get current user profile
// @Description Get the profile of the authenticated user.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	log := h.logger.WithField("method", "me")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Register or update own location
// @Description Geocode the given address and upsert the caller's geotagged record. One record per user.
// @Tags Locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body SaveLocationRequest true "Location registration request"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Address could not be resolved"
// @Failure 502 {object} map[string]string "Geocoding provider failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations [post]
func (h *Handler) saveLocation(c *gin.Context) {
	var input SaveLocationRequest
	log := h.logger.WithField("method", "saveLocation")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := h.locationService.SaveLocation(c.Request.Context(), userID, input.Type, input.Address, input.IsAvailable)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(loc))
}

// @Summary Find nearby donors and facilities
// @Description Find available locations of the given type within a radius, sorted by distance and enriched with travel distance.
// @Tags Locations
// @Produce json
// @Security BearerAuth
// @Param latitude query number true "Query point latitude"
// @Param longitude query number true "Query point longitude"
// @Param radius query int false "Search radius in meters" default(10000)
// @Param type query string true "Location type" Enums(donor, bloodbank, hospital)
// @Success 200 {array} NearbyMatchResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Distance provider failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/nearby [get]
func (h *Handler) findNearby(c *gin.Context) {
	log := h.logger.WithField("method", "findNearby")

	// Координаты парсим строго: NaN-подобный мусор отклоняется, а не
	// превращается в пустой результат
	lat, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude"})
		return
	}
	lon, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude"})
		return
	}

	radius := 0
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err = strconv.Atoi(radiusStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
	}

	matches, err := h.locationService.FindNearby(c.Request.Context(), lon, lat, radius, c.Query("type"))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToNearbyResponses(matches))
}

// @Summary List blood banks
// @Description Get all registered blood banks with owner contact info. Public endpoint.
// @Tags Locations
// @Produce json
// @Success 200 {array} BloodBankResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /locations/blood-banks [get]
func (h *Handler) listBloodBanks(c *gin.Context) {
	log := h.logger.WithField("method", "listBloodBanks")

	banks, err := h.locationService.ListBloodBanks(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBloodBankResponses(banks))
}

// @Summary Create a blood request
// @Description Create a new blood request for the authenticated user.
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBloodRequestRequest true "Blood request creation request"
// @Success 201 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Geocoding provider failed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [post]
func (h *Handler) createRequest(c *gin.Context) {
	var input CreateBloodRequestRequest
	log := h.logger.WithField("method", "createRequest")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBloodRequestModel(input)
	model.RequesterID = userID
	if err := h.requestService.CreateRequest(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToBloodRequestResponse(model))
}

// @Summary Get a list of blood requests
// @Description Get a paginated list of blood requests, newest first.
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} BloodRequestResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests [get]
func (h *Handler) listRequests(c *gin.Context) {
	log := h.logger.WithField("method", "listRequests")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	requests, err := h.requestService.ListRequests(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBloodRequestResponses(requests))
}

// @Summary Get blood request by ID
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blood request ID"
// @Success 200 {object} BloodRequestResponse
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Blood request not found"
// @Router /requests/{id} [get]
func (h *Handler) getRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "getRequest").WithField("id", id)

	req, err := h.requestService.GetRequest(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToBloodRequestResponse(req))
}

// @Summary Update a blood request
// @Description Update an existing blood request. Only the requester can modify it.
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blood request ID"
// @Param request body UpdateBloodRequestRequest true "Blood request update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request ID or body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Blood request not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /requests/{id} [put]
func (h *Handler) updateRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "updateRequest").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	var input UpdateBloodRequestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToBloodRequestModel(input)
	model.ID = id
	model.RequesterID = userID

	if err := h.requestService.UpdateRequest(c.Request.Context(), model); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Cancel a blood request
// @Description Cancel a blood request by its ID. Only the requester can cancel it.
// @Tags Requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blood request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Blood request not found"
// @Router /requests/{id} [delete]
func (h *Handler) cancelRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request ID"})
		return
	}
	log := h.logger.WithField("method", "cancelRequest").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	if err := h.requestService.CancelRequest(c.Request.Context(), id, userID); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Upload a medical document
// @Description Upload a document (multipart form, field "file") for the authenticated user.
// @Tags Documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Document file"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /documents [post]
func (h *Handler) uploadDocument(c *gin.Context) {
	log := h.logger.WithField("method", "uploadDocument")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Missing file in multipart form")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	doc, err := h.documentService.Upload(
		c.Request.Context(),
		userID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToDocumentResponse(doc))
}

// @Summary Download a document
// @Description Download the content of an own document by its ID.
// @Tags Documents
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid document ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /documents/{id} [get]
func (h *Handler) downloadDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document ID"})
		return
	}
	log := h.logger.WithField("method", "downloadDocument").WithField("id", id)

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	doc, reader, err := h.documentService.Download(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", doc.FileName),
	}
	c.DataFromReader(http.StatusOK, doc.SizeBytes, doc.ContentType, reader, extraHeaders)
}

// @Summary List own documents
// @Description Get metadata of the authenticated user's uploaded documents.
// @Tags Documents
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /documents [get]
func (h *Handler) listDocuments(c *gin.Context) {
	log := h.logger.WithField("method", "listDocuments")

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
		return
	}

	docs, err := h.documentService.ListDocuments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDocumentResponses(docs))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
