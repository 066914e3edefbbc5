package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/payload"
	"github.com/Inphy521/Home-Economics/internal/repository"
)

func TestUploaderUpload(t *testing.T) {
	flat := payload.Flat{StudentName: "王小明", IsFinalSubmission: false}

	t.Run("success response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// The spreadsheet backend insists on text/plain bodies.
			assert.Equal(t, "text/plain;charset=utf-8", r.Header.Get("Content-Type"))
			assert.Equal(t, http.MethodPost, r.Method)
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		uploader := NewUploader(zap.NewNop(), server.URL, 5*time.Second)
		assert.NoError(t, uploader.Upload(context.Background(), flat))
	})

	t.Run("server-reported failure carries the message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error","message":"sheet is full"}`))
		}))
		defer server.Close()

		uploader := NewUploader(zap.NewNop(), server.URL, 5*time.Second)
		err := uploader.Upload(context.Background(), flat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sheet is full")
		assert.Contains(t, err.Error(), "告知老師")
	})

	t.Run("failure without message uses the generic text", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"error"}`))
		}))
		defer server.Close()

		uploader := NewUploader(zap.NewNop(), server.URL, 5*time.Second)
		err := uploader.Upload(context.Background(), flat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "伺服器回報錯誤")
	})

	t.Run("non-JSON response names the backend script", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>oops</html>"))
		}))
		defer server.Close()

		uploader := NewUploader(zap.NewNop(), server.URL, 5*time.Second)
		err := uploader.Upload(context.Background(), flat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "格式不正確")
	})

	t.Run("network failure suggests checking the connection", func(t *testing.T) {
		uploader := NewUploader(zap.NewNop(), "http://127.0.0.1:1", time.Second)
		err := uploader.Upload(context.Background(), flat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "網路連線")
	})
}

func TestUploaderDispatch(t *testing.T) {
	newSession := func() *repository.Session {
		store := repository.NewStore(zap.NewNop(), nil)
		return store.GetOrCreate("")
	}

	waitForState := func(t *testing.T, session *repository.Session, want repository.SubmissionState) repository.SubmissionStatus {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for time.Now().Before(deadline) {
			status := session.Submission()
			if status.State == want {
				return status
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("submission never reached state %s", want)
		return repository.SubmissionStatus{}
	}

	t.Run("successful dispatch lands on success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"success"}`))
		}))
		defer server.Close()

		session := newSession()
		uploader := NewUploader(zap.NewNop(), server.URL, 5*time.Second)
		uploader.Dispatch(session, payload.Flat{}, true)

		status := waitForState(t, session, repository.SubmissionSuccess)
		assert.True(t, status.Final)
		assert.Contains(t, status.Message, "成功")
	})

	t.Run("failed dispatch lands on failed with the remediation text", func(t *testing.T) {
		session := newSession()
		uploader := NewUploader(zap.NewNop(), "http://127.0.0.1:1", time.Second)
		uploader.Dispatch(session, payload.Flat{}, false)

		status := waitForState(t, session, repository.SubmissionFailed)
		assert.False(t, status.Final)
		assert.NotEmpty(t, status.Message)
	})
}
