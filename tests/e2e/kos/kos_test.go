//go:build e2e

package kos_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"koskita/internal/domain/user"
	"koskita/internal/handler/dto/request"
	resdto "koskita/internal/handler/dto/response"
	"koskita/tests/common/authtest"
	"koskita/tests/common/dbtest"
	"koskita/tests/common/httptest"
	"koskita/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const kosURL = "/api/kos"

type kosSuite struct {
	e2e.SharedSuite

	sellerToken string
	renterToken string
}

func TestKosSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(kosSuite))
}

func (s *kosSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "seller@example.com", string(user.RoleSeller))
	dbtest.CreateTestUser(s.T(), s.DB, "renter@example.com", string(user.RoleRenter))

	s.sellerToken = authtest.LoginUser(s.T(), s.Router, "seller@example.com", "password123")
	s.renterToken = authtest.LoginUser(s.T(), s.Router, "renter@example.com", "password123")
}

func (s *kosSuite) createKos(token, name, city string, price int64) (*resdto.KosResponse, int) {
	s.T().Helper()

	reqBody := request.CreateKosRequest{
		Name:         name,
		Address:      "Jl. Kembang Sepatu No. 5",
		City:         city,
		Description:  "Dekat kampus",
		MonthlyPrice: price,
		RoomTotal:    10,
		GenderPolicy: "any",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, kosURL, reqBody, token)
	if w.Code != http.StatusCreated {
		return nil, w.Code
	}

	var env httptest.Envelope
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &env))
	var res resdto.KosResponse
	require.NoError(s.T(), json.Unmarshal(env.Data, &res))
	return &res, w.Code
}

func (s *kosSuite) TestCreateKos() {
	s.Run("seller creates a published listing", func() {
		t := s.T()

		res, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "Kos Melati", res.Name)
		require.Equal(t, "Bandung", res.City)
		require.True(t, res.IsPublished)
		require.Equal(t, int64(1_500_000), res.MonthlyPrice)
	})

	s.Run("renter gets 403", func() {
		t := s.T()

		_, code := s.createKos(s.renterToken, "Kos Renter", "Bandung", 1_000_000)
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("anonymous gets 401", func() {
		t := s.T()

		_, code := s.createKos("", "Kos Anon", "Bandung", 1_000_000)
		require.Equal(t, http.StatusUnauthorized, code)
	})

	s.Run("rejects a non-positive price", func() {
		t := s.T()

		_, code := s.createKos(s.sellerToken, "Kos Gratis", "Bandung", 0)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func (s *kosSuite) TestUpdateAndUnpublish() {
	s.Run("owner updates fields selectively", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)

		newPrice := int64(1_750_000)
		reqBody := request.UpdateKosRequest{MonthlyPrice: &newPrice}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, kosURL+"/"+created.ID.String(), reqBody, s.sellerToken)

		var updated resdto.KosResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, newPrice, updated.MonthlyPrice)
		require.Equal(t, "Kos Melati", updated.Name, "untouched fields keep their values")
	})

	s.Run("another seller cannot update or unpublish", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "rival@example.com", string(user.RoleSeller))
		name := "Kos Bajakan"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, kosURL+"/"+created.ID.String(),
			request.UpdateKosRequest{Name: &name}, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, kosURL+"/"+created.ID.String(), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden")
	})

	s.Run("unpublished listing disappears from public view but not from its owner", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		detailURL := kosURL + "/" + created.ID.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, detailURL, nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code, "public detail hides unpublished listings")

		var detail resdto.KosResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, detailURL, nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.False(t, detail.IsPublished)
	})
}

func (s *kosSuite) TestSearch() {
	s.Run("filters by city, gender, and price range", func() {
		t := s.T()

		_, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		_, code = s.createKos(s.sellerToken, "Kos Anggrek", "Jakarta", 2_500_000)
		require.Equal(t, http.StatusCreated, code)

		var results []*resdto.KosListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL+"?city=Bandung", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
		require.Len(t, results, 1)
		require.Equal(t, "Kos Melati", results[0].Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL+"?maxPrice=2000000", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
		require.Len(t, results, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
		require.Len(t, results, 2)
	})

	s.Run("cheapest sort orders by price ascending", func() {
		t := s.T()

		_, code := s.createKos(s.sellerToken, "Kos Mahal", "Bandung", 3_000_000)
		require.Equal(t, http.StatusCreated, code)
		_, code = s.createKos(s.sellerToken, "Kos Murah", "Bandung", 900_000)
		require.Equal(t, http.StatusCreated, code)

		var results []*resdto.KosListResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL+"?sort=cheapest", nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
		require.Len(t, results, 2)
		require.Equal(t, "Kos Murah", results[0].Name)
	})

	s.Run("unpublished listings never appear", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Rahasia", "Bandung", 1_000_000)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, kosURL+"/"+created.ID.String(), nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var results []*resdto.KosListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL, nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &results)
		require.Empty(t, results)
	})

	s.Run("rejects an invalid sort value", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL+"?sort=expensive", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})
}

func (s *kosSuite) TestPhotos() {
	s.Run("owner manages photos", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		photosURL := kosURL + "/" + created.ID.String() + "/photos"

		reqBody := request.AddPhotoRequest{
			URL:     "https://cdn.example.com/kos/melati-front.jpg",
			Caption: "Tampak depan",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, photosURL, reqBody, s.sellerToken)

		var body map[string]uuid.UUID
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		photoID := body["photoId"]
		require.NotEqual(t, uuid.Nil, photoID)

		var detail resdto.KosResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, kosURL+"/"+created.ID.String(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Len(t, detail.Photos, 1)
		require.Equal(t, "Tampak depan", detail.Photos[0].Caption)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, photosURL+"/"+photoID.String(), nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("rejects a malformed photo URL", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)

		reqBody := request.AddPhotoRequest{URL: "not-a-url"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, kosURL+"/"+created.ID.String()+"/photos", reqBody, s.sellerToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "validation_error")
	})
}

func (s *kosSuite) TestFavorites() {
	s.Run("renter favorites and unfavorites a kos", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		favURL := kosURL + "/" + created.ID.String() + "/favorite"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var favorites []*resdto.KosListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/favorites", nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
		require.Len(t, favorites, 1)
		require.Equal(t, created.ID, favorites[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/favorites", nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
		require.Empty(t, favorites)
	})

	s.Run("favoriting twice stays idempotent", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		favURL := kosURL + "/" + created.ID.String() + "/favorite"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var favorites []*resdto.KosListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/favorites", nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &favorites)
		require.Len(t, favorites, 1)
	})

	s.Run("unfavoriting twice stays idempotent", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		favURL := kosURL + "/" + created.ID.String() + "/favorite"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, favURL, nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("unfavoriting a kos that was never favorited succeeds", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			kosURL+"/"+created.ID.String()+"/favorite", nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("favoriting an unknown kos gets 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, kosURL+"/"+uuid.NewString()+"/favorite", nil, s.renterToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})
}

func (s *kosSuite) TestListOwn() {
	s.Run("seller sees their own listings including unpublished", func() {
		t := s.T()

		created, code := s.createKos(s.sellerToken, "Kos Melati", "Bandung", 1_500_000)
		require.Equal(t, http.StatusCreated, code)
		_, code = s.createKos(s.sellerToken, "Kos Anggrek", "Jakarta", 2_000_000)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, kosURL+"/"+created.ID.String(), nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var own []*resdto.KosListResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/my/kos", nil, s.sellerToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &own)
		require.Len(t, own, 2)
	})

	s.Run("renter gets 403", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/my/kos", nil, s.renterToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden")
	})
}
