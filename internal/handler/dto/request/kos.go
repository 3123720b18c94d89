package request

import (
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"
)

type CreateKosRequest struct {
	Name         string `json:"name" binding:"required,max=120"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	Description  string `json:"description"`
	MonthlyPrice int64  `json:"monthlyPrice" binding:"required,gt=0"`
	RoomTotal    int    `json:"roomTotal" binding:"required,gt=0"`
	GenderPolicy string `json:"genderPolicy" binding:"omitempty,oneof=any male female"`
}

func (r CreateKosRequest) ToCommand() commands.CreateKosRequest {
	policy := r.GenderPolicy
	if policy == "" {
		policy = "any"
	}
	return commands.CreateKosRequest{
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		Description:  r.Description,
		MonthlyPrice: r.MonthlyPrice,
		RoomTotal:    r.RoomTotal,
		GenderPolicy: policy,
	}
}

type UpdateKosRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=120"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	Description  *string `json:"description,omitempty"`
	MonthlyPrice *int64  `json:"monthlyPrice,omitempty" binding:"omitempty,gt=0"`
	RoomTotal    *int    `json:"roomTotal,omitempty" binding:"omitempty,gt=0"`
	GenderPolicy *string `json:"genderPolicy,omitempty" binding:"omitempty,oneof=any male female"`
}

func (r UpdateKosRequest) ToCommand() commands.UpdateKosRequest {
	return commands.UpdateKosRequest{
		Name:         r.Name,
		Address:      r.Address,
		City:         r.City,
		Description:  r.Description,
		MonthlyPrice: r.MonthlyPrice,
		RoomTotal:    r.RoomTotal,
		GenderPolicy: r.GenderPolicy,
	}
}

type AddPhotoRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Caption  string `json:"caption"`
	Position int    `json:"position" binding:"omitempty,gte=0"`
}

func (r AddPhotoRequest) ToCommand() commands.AddPhotoRequest {
	return commands.AddPhotoRequest{
		URL:      r.URL,
		Caption:  r.Caption,
		Position: r.Position,
	}
}

type SearchKosRequest struct {
	City     *string `form:"city"`
	Gender   *string `form:"gender" binding:"omitempty,oneof=any male female"`
	MinPrice *int64  `form:"minPrice" binding:"omitempty,gte=0"`
	MaxPrice *int64  `form:"maxPrice" binding:"omitempty,gte=0"`
	Sort     string  `form:"sort" binding:"omitempty,oneof=recommended cheapest newest"`
	Limit    int     `form:"limit" binding:"omitempty,gte=1,lte=100"`
}

func (r SearchKosRequest) ToFilter() queries.KosSearchFilter {
	sort := queries.SortOrder(r.Sort)
	if !sort.IsValid() {
		sort = queries.SortRecommended
	}
	return queries.KosSearchFilter{
		City:     r.City,
		Gender:   r.Gender,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
		Sort:     sort,
		Limit:    r.Limit,
	}
}
