package v1

import "github.com/manojbhatti001/Blood-Donation-sub000/internal/models"

// ModelToUserResponse преобразует пользователя в DTO без приватных полей
func ModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

// ModelToLocationResponse преобразует геоточку в DTO
func ModelToLocationResponse(loc *models.Location) LocationResponse {
	return LocationResponse{
		ID:          loc.ID,
		UserID:      loc.UserID,
		Type:        loc.Kind,
		Longitude:   loc.Longitude,
		Latitude:    loc.Latitude,
		Address:     loc.Address,
		IsAvailable: loc.IsAvailable,
		UpdatedAt:   loc.UpdatedAt,
	}
}

// ModelsToNearbyResponses преобразует результаты геопоиска в DTO
func ModelsToNearbyResponses(matches []*models.NearbyMatch) []NearbyMatchResponse {
	responses := make([]NearbyMatchResponse, len(matches))
	for i, match := range matches {
		responses[i] = NearbyMatchResponse{
			Location: ModelToLocationResponse(&match.Location),
			Owner: OwnerResponse{
				ID:    match.Owner.ID,
				Name:  match.Owner.Name,
				Email: match.Owner.Email,
				Phone: match.Owner.Phone,
			},
			Distance: DistanceResponse{
				Meters:  match.Distance.Meters,
				Seconds: match.Distance.Seconds,
			},
		}
	}
	return responses
}

// ModelsToBloodBankResponses преобразует список банков крови в DTO
func ModelsToBloodBankResponses(banks []*models.BloodBank) []BloodBankResponse {
	responses := make([]BloodBankResponse, len(banks))
	for i, bank := range banks {
		responses[i] = BloodBankResponse{
			Location: ModelToLocationResponse(&bank.Location),
			Owner: OwnerResponse{
				ID:    bank.Owner.ID,
				Name:  bank.Owner.Name,
				Phone: bank.Owner.Phone,
			},
		}
	}
	return responses
}

// DTOToBloodRequestModel преобразует DTO создания/обновления в доменную модель.
// Используем одну функцию, так как поля совпадают.
func DTOToBloodRequestModel(dto any) *models.BloodRequest {
	switch v := dto.(type) {
	case CreateBloodRequestRequest:
		return &models.BloodRequest{
			BloodGroup: v.BloodGroup,
			Units:      v.Units,
			Urgency:    v.Urgency,
			Address:    v.Address,
		}
	case UpdateBloodRequestRequest:
		return &models.BloodRequest{
			BloodGroup: v.BloodGroup,
			Units:      v.Units,
			Urgency:    v.Urgency,
			Address:    v.Address,
			Status:     v.Status,
		}
	}
	return nil
}

// ModelToBloodRequestResponse преобразует заявку в DTO
func ModelToBloodRequestResponse(req *models.BloodRequest) *BloodRequestResponse {
	return &BloodRequestResponse{
		ID:          req.ID,
		RequesterID: req.RequesterID,
		BloodGroup:  req.BloodGroup,
		Units:       req.Units,
		Urgency:     req.Urgency,
		Status:      req.Status,
		Address:     req.Address,
		Longitude:   req.Longitude,
		Latitude:    req.Latitude,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}
}

// ModelsToBloodRequestResponses преобразует слайс заявок в слайс DTO
func ModelsToBloodRequestResponses(requests []*models.BloodRequest) []*BloodRequestResponse {
	responses := make([]*BloodRequestResponse, len(requests))
	for i, req := range requests {
		responses[i] = ModelToBloodRequestResponse(req)
	}
	return responses
}

// ModelToDocumentResponse преобразует метаданные документа в DTO
func ModelToDocumentResponse(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          doc.ID,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		SizeBytes:   doc.SizeBytes,
		UploadedAt:  doc.UploadedAt,
	}
}

// ModelsToDocumentResponses преобразует слайс документов в слайс DTO
func ModelsToDocumentResponses(docs []*models.Document) []*DocumentResponse {
	responses := make([]*DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = ModelToDocumentResponse(doc)
	}
	return responses
}
