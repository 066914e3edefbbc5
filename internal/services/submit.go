package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/payload"
	"github.com/Inphy521/Home-Economics/internal/repository"
)

// sheetResponse is the spreadsheet backend's reply shape.
type sheetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Uploader posts flat payloads to the spreadsheet-backed endpoint. The body
// is JSON but declared text/plain, which is what the backend's request
// parser requires.
type Uploader struct {
	log    *zap.Logger
	client *http.Client
	url    string
}

func NewUploader(log *zap.Logger, url string, timeout time.Duration) *Uploader {
	return &Uploader{
		log:    log,
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Upload performs one submission and returns a user-facing error on any
// failure. It does not retry; the student re-clicks submit.
func (u *Uploader) Upload(ctx context.Context, flat payload.Flat) error {
	body, err := json.Marshal(flat)
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := u.client.Do(req)
	if err != nil {
		u.log.Error("Upload request failed", zap.Error(err))
		return fmt.Errorf("%s", remediation("上傳失敗，請檢查您的網路連線，然後再試一次。", err.Error()))
	}
	defer resp.Body.Close()

	var result sheetResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		u.log.Error("Upload response was not JSON", zap.Error(err))
		return fmt.Errorf("%s", remediation("伺服器回應的格式不正確，請聯繫老師檢查後端腳本。", err.Error()))
	}

	if result.Status != "success" {
		message := result.Message
		if message == "" {
			message = "伺服器回報錯誤，但未提供詳細資訊"
		}
		u.log.Warn("Upload rejected by server", zap.String("message", message))
		return fmt.Errorf("%s", remediation("上傳失敗，請再試一次。", message))
	}

	return nil
}

// remediation builds the detailed message shown next to the status
// indicator, including what to forward to the teacher.
func remediation(hint, detail string) string {
	var b strings.Builder
	b.WriteString(hint)
	b.WriteString("\n如果問題持續存在，請將錯誤訊息截圖並告知老師：")
	b.WriteString(detail)
	return b.String()
}

// Dispatch fires one submission asynchronously and keeps the session's
// status indicator current. Navigation never waits on it, and nothing stops
// a second dispatch while one is pending.
func (u *Uploader) Dispatch(session *repository.Session, flat payload.Flat, final bool) {
	session.SetSubmission(repository.SubmissionStatus{
		State: repository.SubmissionPending,
		Final: final,
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), u.client.Timeout)
		defer cancel()

		if err := u.Upload(ctx, flat); err != nil {
			session.SetSubmission(repository.SubmissionStatus{
				State:   repository.SubmissionFailed,
				Message: err.Error(),
				Final:   final,
			})
			return
		}

		u.log.Info("Upload succeeded",
			zap.String("sessionID", session.ID),
			zap.Bool("final", final),
		)
		session.SetSubmission(repository.SubmissionStatus{
			State:   repository.SubmissionSuccess,
			Message: "資料上傳成功！",
			Final:   final,
		})
	}()
}
