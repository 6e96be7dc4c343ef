package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/session"
)

// GET /api/grades
func (s *Server) listGrades(c *gin.Context) {
	cat := s.deps.Registry.Catalog()
	c.JSON(http.StatusOK, lo.Map(cat.Grades(), func(g int, _ int) gradeView {
		return gradeView{Grade: g, Name: cat.GradeName(g), Topics: len(cat.ListTopics(g))}
	}))
}

// GET /api/grades/:grade/topics
func (s *Server) listTopics(c *gin.Context) {
	grade, err := strconv.Atoi(c.Param("grade"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "bad_grade", fmt.Errorf("grade must be a number"))
		return
	}
	cat := s.deps.Registry.Catalog()
	topics := cat.ListTopics(grade)
	if topics == nil {
		respondError(c, http.StatusNotFound, "unknown_grade", fmt.Errorf("no topics for grade %d", grade))
		return
	}
	c.JSON(http.StatusOK, topicsView{Grade: grade, Name: cat.GradeName(grade), Topics: topics})
}

type createSessionRequest struct {
	Grade *int   `json:"grade"`
	Topic string `json:"topic" binding:"required"`
}

// POST /api/sessions
// Unknown topics are accepted; problems then come from the fallback topic.
func (s *Server) createSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	topic := req.Topic
	if canonical, ok := s.deps.Registry.Catalog().Canonical(topic); ok {
		topic = canonical
	}
	grade, _ := s.deps.Registry.Grade(topic)
	if req.Grade != nil {
		grade = *req.Grade
	}

	sess := s.newSession(grade, topic)
	c.JSON(http.StatusCreated, sessionView{ID: sess.ID, Grade: sess.Grade, Topic: sess.Topic})
}

type nextProblemRequest struct {
	Grade *int   `json:"grade"`
	Topic string `json:"topic"`
}

// POST /api/sessions/:id/problems
// An optional topic switches the session before generating.
func (s *Server) nextProblem(c *gin.Context) {
	var req nextProblemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	s.withSession(c, func(sess *session.Session) {
		if req.Topic != "" && req.Topic != sess.Topic {
			grade, _ := s.deps.Registry.Grade(req.Topic)
			if req.Grade != nil {
				grade = *req.Grade
			}
			sess.SetTopic(grade, req.Topic)
		}

		p, err := sess.Next(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "generation_failed", err)
			return
		}
		c.JSON(http.StatusOK, viewProblem(p))
	})
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// POST /api/sessions/:id/answers
func (s *Server) submitAnswer(c *gin.Context) {
	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	s.withSession(c, func(sess *session.Session) {
		v, err := sess.Submit(c.Request.Context(), req.Answer)
		switch {
		case errors.Is(err, session.ErrNoProblem):
			respondError(c, http.StatusConflict, "no_problem", err)
			return
		case err != nil:
			_ = c.Error(err)
			respondError(c, http.StatusInternalServerError, "submit_failed", err)
			return
		}

		out := verdictView{
			Outcome:   v.Outcome.String(),
			Correct:   v.Outcome == session.Correct,
			Expected:  v.Expected,
			Milestone: v.Milestone,
			Stats:     viewStats(v.Stats),
		}
		switch v.Outcome {
		case session.Empty:
			c.JSON(http.StatusUnprocessableEntity, out)
			return
		case session.Regenerated:
			pv := viewProblem(v.Problem)
			out.Problem = &pv
		}
		c.JSON(http.StatusOK, out)
	})
}

// GET /api/sessions/:id/stats
func (s *Server) sessionStats(c *gin.Context) {
	s.withSession(c, func(sess *session.Session) {
		c.JSON(http.StatusOK, viewStats(sess.Stats))
	})
}

type resetRequest struct {
	Confirm bool `json:"confirm"`
}

// POST /api/sessions/:id/reset
func (s *Server) resetSession(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}

	s.withSession(c, func(sess *session.Session) {
		if err := sess.Reset(c.Request.Context(), req.Confirm); err != nil {
			respondError(c, http.StatusBadRequest, "reset_not_confirmed", err)
			return
		}
		c.JSON(http.StatusOK, viewStats(sess.Stats))
	})
}

// GET /api/sessions/:id/explain
// Explains the problem just graded. The open problem is never explained.
func (s *Server) explainProblem(c *gin.Context) {
	s.withSession(c, func(sess *session.Session) {
		switch {
		case sess.Current != nil:
			respondError(c, http.StatusConflict, "problem_open", session.ErrProblemOpen)
			return
		case sess.Last == nil:
			respondError(c, http.StatusConflict, "no_problem", session.ErrNoProblem)
			return
		}
		p := sess.Last.Problem

		var e explain.Explanation
		if s.deps.Tutor != nil {
			e = s.deps.Tutor.Explain(c.Request.Context(), p, s.deps.Registry.Catalog().GradeName(p.Grade))
		} else {
			e = explain.Walkthrough(p)
		}
		c.JSON(http.StatusOK, explainView{ProblemID: p.ID, Explanation: e})
	})
}
