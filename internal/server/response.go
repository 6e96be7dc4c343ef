package server

import (
	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/problem"
	"github.com/abhisek/mathlab/internal/stats"
)

type apiError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, errorEnvelope{Error: apiError{Message: msg, Code: code}})
}

type gradeView struct {
	Grade  int    `json:"grade"`
	Name   string `json:"name"`
	Topics int    `json:"topics"`
}

type topicsView struct {
	Grade  int      `json:"grade"`
	Name   string   `json:"name"`
	Topics []string `json:"topics"`
}

type sessionView struct {
	ID    string `json:"id"`
	Grade int    `json:"grade"`
	Topic string `json:"topic"`
}

// problemView withholds the answer.
type problemView struct {
	ID       string `json:"id"`
	Topic    string `json:"topic"`
	Grade    int    `json:"grade"`
	Display  string `json:"display"`
	Fallback bool   `json:"fallback,omitempty"`
}

func viewProblem(p problem.Problem) problemView {
	return problemView{ID: p.ID, Topic: p.Topic, Grade: p.Grade, Display: p.Display, Fallback: p.Fallback}
}

type statsView struct {
	stats.State
	Accuracy float64 `json:"accuracy"`
	NextGoal int     `json:"nextStreakGoal"`
}

func viewStats(st stats.State) statsView {
	return statsView{State: st, Accuracy: st.Accuracy(), NextGoal: stats.NextStreakMilestone(st.Streak)}
}

type verdictView struct {
	Outcome   string       `json:"outcome"`
	Correct   bool         `json:"correct"`
	Expected  string       `json:"expected,omitempty"`
	Milestone bool         `json:"milestone,omitempty"`
	Stats     statsView    `json:"stats"`
	Problem   *problemView `json:"problem,omitempty"`
}

type explainView struct {
	ProblemID string `json:"problemId"`
	explain.Explanation
}
