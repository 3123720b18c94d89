//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	domreview "koskita/internal/domain/review"
	"koskita/internal/domain/user"
	"koskita/internal/handler/api"
	resdto "koskita/internal/handler/dto/response"
	"koskita/internal/usecase/commands"
	"koskita/internal/usecase/queries"
	"koskita/tests/common/builder"
	"koskita/tests/common/httptest"
	"koskita/tests/common/testutil"
	commandsmock "koskita/tests/mock/commands"
	queriesmock "koskita/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actorID      uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"message": "Access token required",
			})
			return
		}
		c.Set("user_id", s.actorID)
		c.Set("user_role", user.RoleRenter)
		c.Next()
	}

	s.router.POST("/api/kos/:id/reviews", authMiddleware, s.handler.CreateReview)
	s.router.GET("/api/kos/:id/reviews", s.handler.ListByKos)
	s.router.PUT("/api/reviews/:id", authMiddleware, s.handler.UpdateReview)
	s.router.DELETE("/api/reviews/:id", authMiddleware, s.handler.DeleteReview)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreateReview() {
	kosID := uuid.New()
	url := "/api/kos/" + kosID.String() + "/reviews"

	rb := builder.NewReviewBuilder().WithKosID(kosID)
	reqBody := rb.BuildCreateRequestDTO()
	returnResult := &commands.CreateReviewResult{ReviewID: uuid.New()}

	s.Run("success: returns 201 Created with review id", func() {
		expectedCmd := commands.CreateReviewRequest{
			KosID:     kosID,
			BookingID: reqBody.BookingID,
			Rating:    reqBody.Rating,
			Comment:   reqBody.Comment,
		}
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), expectedCmd, s.actorID).
			Return(returnResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnResult.ReviewID.String(), body["reviewId"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
			{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
			{name: "missing field: bookingId (required)", mutate: testutil.Field("bookingId", nil), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
						Return(returnResult, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "validation_error")
				}
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid kos UUID", func() {
		invalidURL := "/api/kos/invalid-uuid/reviews"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectStatus  int
			expectErrCode string
		}{
			{
				name:          "no completed booking on this kos",
				commandsError: domreview.ErrBookingNotEligible,
				expectStatus:  http.StatusForbidden,
				expectErrCode: "forbidden",
			},
			{
				name:          "booking already reviewed",
				commandsError: domreview.ErrReviewAlreadyExists,
				expectStatus:  http.StatusForbidden,
				expectErrCode: "forbidden",
			},
			{
				name:          "internal server error",
				commandsError: errors.New("database error"),
				expectStatus:  http.StatusInternalServerError,
				expectErrCode: "internal_error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), s.actorID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectErrCode)
			})
		}
	})
}

// ================================================================================
// TestUpdateReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdateReview() {
	reviewID := uuid.New()
	url := "/api/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().WithRating(4).BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK", func() {
		expectedCmd := commands.UpdateReviewRequest{Rating: reqBody.Rating, Comment: reqBody.Comment}
		s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, expectedCmd, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []testCaseReview{
			{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
			{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
			{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "validation_error")
			})
		}
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/api/reviews/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, invalidURL, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectStatus  int
			expectErrCode string
		}{
			{
				name:          "review not owned",
				commandsError: commands.ErrReviewNotOwned,
				expectStatus:  http.StatusForbidden,
				expectErrCode: "forbidden",
			},
			{
				name:          "review not found",
				commandsError: commands.ErrReviewNotFoundWrite,
				expectStatus:  http.StatusNotFound,
				expectErrCode: "not_found",
			},
			{
				name:          "internal server error",
				commandsError: errors.New("database error"),
				expectStatus:  http.StatusInternalServerError,
				expectErrCode: "internal_error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateReview(gomock.Any(), reviewID, gomock.Any(), s.actorID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectErrCode)
			})
		}
	})
}

// ================================================================================
// TestDeleteReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDeleteReview() {
	reviewID := uuid.New()
	url := "/api/reviews/" + reviewID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, user.RoleRenter.String()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: delete as admin", func() {
		adminRouter := gin.New()
		adminID := uuid.New()
		adminAuthMiddleware := func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("user_id", adminID)
				c.Set("user_role", user.RoleAdmin)
			}
			c.Next()
		}
		adminRouter.DELETE("/api/reviews/:id", adminAuthMiddleware, s.handler.DeleteReview)

		s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, adminID, user.RoleAdmin.String()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), adminRouter, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		invalidURL := "/api/reviews/invalid-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, invalidURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name          string
			commandsError error
			expectStatus  int
			expectErrCode string
		}{
			{
				name:          "review not owned",
				commandsError: commands.ErrReviewNotOwned,
				expectStatus:  http.StatusForbidden,
				expectErrCode: "forbidden",
			},
			{
				name:          "review not found",
				commandsError: commands.ErrReviewNotFoundWrite,
				expectStatus:  http.StatusNotFound,
				expectErrCode: "not_found",
			},
			{
				name:          "internal server error",
				commandsError: errors.New("database error"),
				expectStatus:  http.StatusInternalServerError,
				expectErrCode: "internal_error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().DeleteReview(gomock.Any(), reviewID, s.actorID, user.RoleRenter.String()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectStatus, tc.expectErrCode)
			})
		}
	})
}

// ================================================================================
// TestListByKos
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByKos() {
	kosID := uuid.New()
	url := "/api/kos/" + kosID.String() + "/reviews"

	items := []*queries.ReviewView{
		builder.NewReviewBuilder().WithKosID(kosID).WithRating(5).BuildView(),
		builder.NewReviewBuilder().WithKosID(kosID).WithRating(3).BuildView(),
	}

	s.Run("success: returns reviews without authentication", func() {
		s.mockQueries.EXPECT().ListByKos(gomock.Any(), kosID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []*resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
		s.Equal(5, response[0].Rating)
		s.Equal(3, response[1].Rating)
	})

	s.Run("error: 400 Bad Request for invalid kos UUID", func() {
		invalidURL := "/api/kos/invalid-uuid/reviews"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, invalidURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "validation_error")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().ListByKos(gomock.Any(), kosID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "internal_error")
	})
}
