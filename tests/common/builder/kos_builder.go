//go:build unit || e2e

package builder

import (
	"time"

	"koskita/internal/domain/kos"
	reqdto "koskita/internal/handler/dto/request"
	"koskita/internal/usecase/queries"

	"github.com/google/uuid"
)

type KosBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Address      string
	City         string
	Description  string
	MonthlyPrice int64
	RoomTotal    int
	GenderPolicy string
	IsPublished  bool
	RatingAvg    float64
	ReviewCount  int
	CreatedAt    time.Time
}

func NewKosBuilder() *KosBuilder {
	return &KosBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Name:         "Kos Melati",
		Address:      "Jl. Kenanga No. 12",
		City:         "Bandung",
		Description:  "Near campus, quiet street",
		MonthlyPrice: 1_500_000,
		RoomTotal:    10,
		GenderPolicy: "any",
		IsPublished:  true,
		CreatedAt:    time.Now(),
	}
}

func (k *KosBuilder) With(mutate func(*KosBuilder)) *KosBuilder {
	mutate(k)
	return k
}

func (k *KosBuilder) WithOwnerID(ownerID uuid.UUID) *KosBuilder {
	k.OwnerID = ownerID
	return k
}

func (k *KosBuilder) WithName(name string) *KosBuilder {
	k.Name = name
	return k
}

func (k *KosBuilder) WithMonthlyPrice(price int64) *KosBuilder {
	k.MonthlyPrice = price
	return k
}

func (k *KosBuilder) WithGenderPolicy(policy string) *KosBuilder {
	k.GenderPolicy = policy
	return k
}

func (k *KosBuilder) AsUnpublished() *KosBuilder {
	k.IsPublished = false
	return k
}

func (k *KosBuilder) BuildDomain() (*kos.Kos, error) {
	name, err := kos.NewName(k.Name)
	if err != nil {
		return nil, err
	}
	price, err := kos.NewMonthlyPrice(k.MonthlyPrice)
	if err != nil {
		return nil, err
	}
	policy, err := kos.NewGenderPolicy(k.GenderPolicy)
	if err != nil {
		return nil, err
	}
	return kos.NewKos(k.OwnerID, name, k.Address, k.City, k.Description, price, k.RoomTotal, policy)
}

func (k *KosBuilder) BuildCreateRequestDTO() reqdto.CreateKosRequest {
	return reqdto.CreateKosRequest{
		Name:         k.Name,
		Address:      k.Address,
		City:         k.City,
		Description:  k.Description,
		MonthlyPrice: k.MonthlyPrice,
		RoomTotal:    k.RoomTotal,
		GenderPolicy: k.GenderPolicy,
	}
}

func (k *KosBuilder) BuildView() *queries.KosView {
	return &queries.KosView{
		ID:           k.ID,
		OwnerID:      k.OwnerID,
		Name:         k.Name,
		Address:      k.Address,
		City:         k.City,
		Description:  k.Description,
		MonthlyPrice: k.MonthlyPrice,
		RoomTotal:    k.RoomTotal,
		GenderPolicy: k.GenderPolicy,
		IsPublished:  k.IsPublished,
		RatingAvg:    k.RatingAvg,
		ReviewCount:  k.ReviewCount,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.CreatedAt,
	}
}

func (k *KosBuilder) BuildListItem() *queries.KosListItem {
	return &queries.KosListItem{
		ID:           k.ID,
		Name:         k.Name,
		City:         k.City,
		MonthlyPrice: k.MonthlyPrice,
		GenderPolicy: k.GenderPolicy,
		RatingAvg:    k.RatingAvg,
		ReviewCount:  k.ReviewCount,
		CreatedAt:    k.CreatedAt,
	}
}
