package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"escolaadmin/core/lesson"
	"escolaadmin/core/schedule"
)

func seededSchool() *fakeSchool {
	return &fakeSchool{
		lessons: []lesson.Lesson{
			{ID: 1, TeacherID: 7, Date: lesson.ParseWireDate("14/01/2030 08:00"), Language: "Inglês", TeacherAmount: 40, SchoolAmount: 60, Active: true},
			{ID: 2, TeacherID: 7, Date: lesson.ParseWireDate("16/01/2030 14:30"), Language: "Inglês", TeacherAmount: 40, SchoolAmount: 60, Active: true},
			{ID: 3, TeacherID: 9, Date: lesson.ParseWireDate("16/01/2030 14:30"), Language: "Espanhol", TeacherAmount: 35, SchoolAmount: 55, Active: true},
			{ID: 4, TeacherID: 7, Date: lesson.ParseWireDate("21/01/2030 09:00"), Language: "Inglês", TeacherAmount: 40, SchoolAmount: 60, Active: true},
			{ID: 5, TeacherID: 7, Date: lesson.ParseWireDate("10/01/2020 09:00"), Language: "Inglês", TeacherAmount: 40, SchoolAmount: 60, Active: true},
		},
	}
}

func Test_scheduleApi_week(t *testing.T) {
	srv := newTestServer(t, seededSchool())
	cookies := login(t, srv)

	t.Run("requires auth", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/v1/schedule/week")
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("full grid", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/schedule/week?anchor=2030-01-16", cookies)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var view schedule.WeekView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Len(t, view.Days, 7)
		assert.Len(t, view.Rows, 29)
		assert.Equal(t, "2030-01-14", view.Days[0].Date)
		assert.Equal(t, "2030-01-20", view.Days[6].Date)
		// lessons 1-3 fall in this week; 4 is next Monday, 5 is years past
		assert.Equal(t, 3, view.Totals.Lessons)
	})

	t.Run("teacher filter", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/schedule/week?anchor=2030-01-16&filter=teacher&teacher_id=7", cookies)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var view schedule.WeekView
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, 2, view.Totals.Lessons)
	})

	t.Run("unknown filter", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/schedule/week?filter=wat", cookies)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("teacher filter without id", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodGet, "/v1/schedule/week?filter=teacher", cookies)
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func Test_scheduleApi_months(t *testing.T) {
	srv := newTestServer(t, seededSchool())
	cookies := login(t, srv)

	req, rec := newAuthRequest(http.MethodGet, "/v1/schedule/months?year=2030", cookies)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res MonthsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 2030, res.Year)
	assert.Len(t, res.Months, 1) // only January has lessons
	assert.Equal(t, 4, res.Months[0].Lessons)
	assert.Equal(t, 4, res.Totals.Lessons)
}

func Test_scheduleApi_bulkDelete(t *testing.T) {
	t.Run("confirmation count mismatch", func(t *testing.T) {
		srv := newTestServer(t, seededSchool())
		cookies := login(t, srv)

		// teacher 7 has 3 future lessons, not 2
		req, rec := newAuthRequest(http.MethodPost, "/v1/schedule/bulk-delete", cookies,
			[]byte(`{"teacher_id": 7, "confirm_count": 2}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error": "confirmation count mismatch", "affected": 3}`, rec.Body.String())
	})

	t.Run("deletes the confirmed set", func(t *testing.T) {
		school := seededSchool()
		srv := newTestServer(t, school)
		cookies := login(t, srv)

		req, rec := newAuthRequest(http.MethodPost, "/v1/schedule/bulk-delete", cookies,
			[]byte(`{"teacher_id": 7, "confirm_count": 3}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"succeeded": 3, "failed": 0, "summary": "3 succeeded"}`, rec.Body.String())
		// the past lesson and the other teacher's lesson survive
		assert.ElementsMatch(t, []int{1, 2, 4}, school.deleted)
	})
}

func Test_scheduleApi_bulkReassign(t *testing.T) {
	school := seededSchool()
	srv := newTestServer(t, school)
	cookies := login(t, srv)

	t.Run("same teacher is rejected", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/schedule/bulk-reassign", cookies,
			[]byte(`{"teacher_id": 7, "new_teacher_id": 7, "confirm_count": 3}`))
		srv.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reassigns the confirmed set", func(t *testing.T) {
		req, rec := newAuthRequest(http.MethodPost, "/v1/schedule/bulk-reassign", cookies,
			[]byte(`{"teacher_id": 7, "new_teacher_id": 9, "confirm_count": 3}`))
		srv.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"succeeded": 3, "failed": 0, "summary": "3 succeeded"}`, rec.Body.String())

		assert.Len(t, school.updated, 3)
		for id, raw := range school.updated {
			var wl lesson.WriteLesson
			assert.NoError(t, json.Unmarshal(raw, &wl))
			assert.Equalf(t, 9, wl.TeacherID, "lesson %d not moved", id)
			assert.NotEmpty(t, wl.Date)
			assert.NotEmpty(t, wl.Language)
		}
	})
}
