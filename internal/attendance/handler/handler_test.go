package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"rollcall/internal/attendance/handler/mocks"
	"rollcall/internal/attendance/models"
	dErrors "rollcall/pkg/domain-errors"
	"rollcall/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service
type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *HandlerSuite) TestLogsFilterParsing() {
	tests := []struct {
		name  string
		query string
		want  models.QueryFilter
	}{
		{
			name:  "no params",
			query: "",
			want:  models.QueryFilter{Names: []string{}, Tokens: []string{}},
		},
		{
			name:  "comma delimited",
			query: "?name=Alice,%20Bob&rfid=T1&date=2024-01-01&log_cabin=LC-1",
			want:  models.QueryFilter{Names: []string{"Alice", "Bob"}, Tokens: []string{"T1"}, Date: "2024-01-01", Location: "LC-1"},
		},
		{
			name:  "repeated params",
			query: "?rfid=T1&rfid=T2",
			want:  models.QueryFilter{Names: []string{}, Tokens: []string{"T1", "T2"}},
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.service.EXPECT().Summaries(gomock.Any(), tt.want).Return([]models.DailySummary{{}}, nil)
			rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/logs"+tt.query))
			testutil.AssertStatusOK(s.T(), rr)
		})
	}
}

func (s *HandlerSuite) TestLogsBody() {
	late := models.LateAbsent
	s.service.EXPECT().Summaries(gomock.Any(), gomock.Any()).Return([]models.DailySummary{
		{Name: "Alice", RFID: "T1", Date: "2024-01-01", LateStatus: &late, Synthesized: true},
	}, nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/logs?name=Alice"))
	testutil.AssertStatusOK(s.T(), rr)
	s.JSONEq(`[{
		"name": "Alice", "rfid": "T1", "date": "2024-01-01",
		"login_time": "", "logout_time": "", "Effective_login": "", "Break_hours": "", "Total_login": "",
		"errors": "Absent", "late_status": "Absent"
	}]`, rr.Body.String())
}

func (s *HandlerSuite) TestLogsFailure() {
	s.service.EXPECT().Summaries(gomock.Any(), gomock.Any()).Return(nil, dErrors.New(dErrors.CodeInternal, "failed to load swipe events"))

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/logs"))
	testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
}

func (s *HandlerSuite) TestExport() {
	s.service.EXPECT().Export(gomock.Any(), gomock.Any()).Return([]byte("xlsx-bytes"), nil)

	rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/logs/export?date=2024-01-01"))
	testutil.AssertStatusOK(s.T(), rr)
	s.Equal(xlsxContentType, rr.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="attendance-2024-01-01.xlsx"`, rr.Header().Get("Content-Disposition"))
	s.Equal("xlsx-bytes", rr.Body.String())

	s.Equal("attendance.xlsx", exportFilename(models.QueryFilter{Date: `x"; evil`}))
}

func (s *HandlerSuite) TestSwipe() {
	t := s.T()

	s.Run("success", func() {
		s.service.EXPECT().Swipe(gomock.Any(), &models.SwipeRequest{RFID: "T1", CabinID: "LC-1", Direction: "IN"}).
			Return(models.SwipeLogged, nil)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/submit", map[string]string{"RFID": "T1", "ID": "LC-1", "IN/OUT": "IN"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusOK(t, rr)
		s.JSONEq(`{"status":"success"}`, rr.Body.String())
	})

	s.Run("missing RFID", func() {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/submit", map[string]string{"ID": "LC-1"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertJSONContains(t, rr, "error_description", "Missing RFID field")
	})

	s.Run("missing ID", func() {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/submit", map[string]string{"RFID": "T1"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
		testutil.AssertJSONContains(t, rr, "error_description", "Missing ID field")
	})

	s.Run("not JSON", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/submit", nil)
		req.Header.Set("Content-Type", "text/plain")
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("unknown badge", func() {
		s.service.EXPECT().Swipe(gomock.Any(), gomock.Any()).
			Return(models.SwipeOutcome(""), dErrors.New(dErrors.CodeNotFound, "No data found for RFID T9"))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/submit", map[string]string{"RFID": "T9", "ID": "LC-1", "IN/OUT": "IN"})
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(t, rr, http.StatusNotFound)
		testutil.AssertJSONContains(t, rr, "error_description", "No data found for RFID T9")
	})
}

func (s *HandlerSuite) TestQueryValue() {
	s.Nil(queryValue(nil, "name"))
	s.Equal("a,b", queryValue(map[string][]string{"name": {"a,b"}}, "name"))
	s.Equal([]string{"a", "b"}, queryValue(map[string][]string{"name": {"a", "b"}}, "name"))
}
