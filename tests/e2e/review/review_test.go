//go:build e2e

package review_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

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

type reviewSuite struct {
	e2e.SharedSuite

	ownerID  uuid.UUID
	renterID uuid.UUID
	kosID    uuid.UUID

	renterToken string
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reviewSuite))
}

func (s *reviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.ownerID = dbtest.CreateTestUser(s.T(), s.DB, "owner@example.com", string(user.RoleSeller))
	s.renterID = dbtest.CreateTestUser(s.T(), s.DB, "renter@example.com", string(user.RoleRenter))
	s.kosID = dbtest.CreateTestKos(s.T(), s.DB, s.ownerID, "Kos Melati", 1_500_000)

	s.renterToken = authtest.LoginUser(s.T(), s.Router, "renter@example.com", "password123")
}

func (s *reviewSuite) reviewsURL() string {
	return "/api/kos/" + s.kosID.String() + "/reviews"
}

// completedBooking seeds a finished stay so the renter is eligible to review.
func (s *reviewSuite) completedBooking(userID uuid.UUID) uuid.UUID {
	s.T().Helper()
	checkIn := time.Now().UTC().AddDate(0, -3, 0)
	return dbtest.CreateTestBooking(s.T(), s.DB, s.kosID, userID, checkIn, 2, 3_000_000, "completed")
}

func (s *reviewSuite) postReview(token string, bookingID uuid.UUID, rating int, comment string) (uuid.UUID, int) {
	s.T().Helper()

	reqBody := request.CreateReviewRequest{
		BookingID: bookingID,
		Rating:    rating,
		Comment:   comment,
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, s.reviewsURL(), reqBody, token)
	if w.Code != http.StatusCreated {
		return uuid.Nil, w.Code
	}

	var env httptest.Envelope
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &env))
	var body map[string]uuid.UUID
	require.NoError(s.T(), json.Unmarshal(env.Data, &body))
	return body["reviewId"], w.Code
}

func (s *reviewSuite) TestCreateReview() {
	s.Run("creates a review for a completed booking", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 5, "Clean rooms and friendly owner")
		require.Equal(t, http.StatusCreated, code)
		require.NotEqual(t, uuid.Nil, reviewID)

		// Rating stats surface on the listing detail.
		var detail resdto.KosResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kos/"+s.kosID.String(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, 1, detail.ReviewCount)
		require.InDelta(t, 5.0, detail.RatingAvg, 0.01)
	})

	s.Run("rejects a second review on the same booking", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		_, code := s.postReview(s.renterToken, bookingID, 5, "First impression")
		require.Equal(t, http.StatusCreated, code)

		_, code = s.postReview(s.renterToken, bookingID, 1, "Changed my mind")
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("rejects a review on a booking that is not completed", func() {
		t := s.T()

		checkIn := time.Now().UTC().AddDate(0, 1, 0)
		bookingID := dbtest.CreateTestBooking(t, s.DB, s.kosID, s.renterID, checkIn, 1, 1_500_000, "pending")

		_, code := s.postReview(s.renterToken, bookingID, 4, "Too early to tell")
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("rejects a review on someone else's booking", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleRenter))

		_, code := s.postReview(otherToken, bookingID, 4, "Was never there")
		require.Equal(t, http.StatusForbidden, code)
	})

	s.Run("sellers cannot post reviews", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		ownerToken := authtest.LoginUser(t, s.Router, "owner@example.com", "password123")

		_, code := s.postReview(ownerToken, bookingID, 5, "Reviewing my own kos")
		require.Equal(t, http.StatusForbidden, code)
	})
}

func (s *reviewSuite) TestUpdateReview() {
	s.Run("author updates their review and stats follow", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 5, "Great at first")
		require.Equal(t, http.StatusCreated, code)

		reqBody := request.UpdateReviewRequest{Rating: 3, Comment: "Got noisy over time"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/reviews/"+reviewID.String(), reqBody, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var detail resdto.KosResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kos/"+s.kosID.String(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.InDelta(t, 3.0, detail.RatingAvg, 0.01)
	})

	s.Run("non-author gets 403", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 5, "Mine")
		require.Equal(t, http.StatusCreated, code)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleRenter))
		reqBody := request.UpdateReviewRequest{Rating: 1, Comment: "Not mine"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/reviews/"+reviewID.String(), reqBody, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden")
	})

	s.Run("unknown review gets 404", func() {
		t := s.T()

		reqBody := request.UpdateReviewRequest{Rating: 3, Comment: "Ghost review"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/reviews/"+uuid.NewString(), reqBody, s.renterToken)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not_found")
	})
}

func (s *reviewSuite) TestDeleteReview() {
	s.Run("author deletes their review", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 4, "Decent stay")
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/reviews/"+reviewID.String(), nil, s.renterToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		var detail resdto.KosResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/kos/"+s.kosID.String(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &detail)
		require.Equal(t, 0, detail.ReviewCount)
	})

	s.Run("admin deletes any review", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 4, "Decent stay")
		require.Equal(t, http.StatusCreated, code)

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", string(user.RoleAdmin))
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/reviews/"+reviewID.String(), nil, adminToken)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("non-author gets 403", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		reviewID, code := s.postReview(s.renterToken, bookingID, 4, "Decent stay")
		require.Equal(t, http.StatusCreated, code)

		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "other@example.com", string(user.RoleRenter))
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, "/api/reviews/"+reviewID.String(), nil, otherToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "forbidden")
	})
}

func (s *reviewSuite) TestListByKos() {
	s.Run("lists reviews publicly, newest first content intact", func() {
		t := s.T()

		bookingID := s.completedBooking(s.renterID)
		_, code := s.postReview(s.renterToken, bookingID, 5, "Clean rooms and friendly owner")
		require.Equal(t, http.StatusCreated, code)

		var reviews []*resdto.ReviewResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.reviewsURL(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Len(t, reviews, 1)
		require.Equal(t, 5, reviews[0].Rating)
		require.Equal(t, "Clean rooms and friendly owner", reviews[0].Comment)
		require.Equal(t, "renter@example.com", reviews[0].UserEmail)
	})

	s.Run("empty list for a kos without reviews", func() {
		t := s.T()

		var reviews []*resdto.ReviewResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.reviewsURL(), nil, "")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &reviews)
		require.Empty(t, reviews)
	})
}
