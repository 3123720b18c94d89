package response

import (
	"time"

	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type KosPhotoResponse struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	Caption  string    `json:"caption"`
	Position int       `json:"position"`
}

type KosResponse struct {
	ID           uuid.UUID          `json:"id"`
	OwnerID      uuid.UUID          `json:"ownerId"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	Description  string             `json:"description"`
	MonthlyPrice int64              `json:"monthlyPrice"`
	RoomTotal    int                `json:"roomTotal"`
	GenderPolicy string             `json:"genderPolicy"`
	IsPublished  bool               `json:"isPublished"`
	RatingAvg    float64            `json:"ratingAvg"`
	ReviewCount  int                `json:"reviewCount"`
	Photos       []KosPhotoResponse `json:"photos"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type KosListResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	MonthlyPrice int64     `json:"monthlyPrice"`
	GenderPolicy string    `json:"genderPolicy"`
	RatingAvg    float64   `json:"ratingAvg"`
	ReviewCount  int       `json:"reviewCount"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromKosView(rm *queries.KosView) *KosResponse {
	var resp KosResponse
	_ = copier.Copy(&resp, rm)
	if resp.Photos == nil {
		resp.Photos = []KosPhotoResponse{}
	}
	return &resp
}

func FromKosListItems(rms []*queries.KosListItem) []*KosListResponse {
	result := make([]*KosListResponse, 0, len(rms))
	for _, rm := range rms {
		var resp KosListResponse
		_ = copier.Copy(&resp, rm)
		result = append(result, &resp)
	}
	return result
}
