package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Inphy521/Home-Economics/internal/wizard"
)

type QuizHandler struct {
	log *zap.Logger
}

func NewQuizHandler(log *zap.Logger) *QuizHandler {
	return &QuizHandler{log: log}
}

// Board returns the quiz state needed to draw the matching columns.
func (h *QuizHandler) Board(c *gin.Context) {
	session := SessionFromContext(c)
	session.WithWizard(func(w *wizard.Wizard) {
		quiz := w.Quiz()
		if quiz == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "配對遊戲尚未開始"})
			return
		}

		solved := []string{}
		for _, id := range quiz.FunctionOrder() {
			if quiz.Solved(id) {
				solved = append(solved, id)
			}
		}
		correct, attempts := quiz.Counts()
		c.JSON(http.StatusOK, gin.H{
			"functionOrder": quiz.FunctionOrder(),
			"solved":        solved,
			"correctCount":  correct,
			"attemptCount":  attempts,
			"completed":     quiz.Completed(),
		})
	})
}

type quizSelectRequest struct {
	Side    string `json:"side" binding:"required"`
	PointID string `json:"pointId" binding:"required"`
}

// Select applies one click on the matching board.
func (h *QuizHandler) Select(c *gin.Context) {
	session := SessionFromContext(c)

	var req quizSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	session.WithWizard(func(w *wizard.Wizard) {
		result, err := w.SelectQuizItem(wizard.QuizSide(req.Side), req.PointID)
		if err != nil {
			if errors.Is(err, wizard.ErrNoQuiz) {
				c.JSON(http.StatusConflict, gin.H{"error": "配對遊戲尚未開始"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	})
}
