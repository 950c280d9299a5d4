package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-kit/log/level"

	"github.com/great123-artV/GradeX/internal/assistant"
	"github.com/great123-artV/GradeX/internal/courses"
	"github.com/great123-artV/GradeX/internal/grading"
	"github.com/great123-artV/GradeX/internal/llm"
	"github.com/great123-artV/GradeX/internal/store"
)

// courseView is a course with its derived grade.
type courseView struct {
	courses.Course
	Grade      string  `json:"grade"`
	GradePoint float64 `json:"grade_point"`
	Carryover  bool    `json:"carryover"`
}

func (s *Server) view(c courses.Course) courseView {
	g := c.Grade(s.courses.Classifier())
	return courseView{
		Course:     c,
		Grade:      g.Letter,
		GradePoint: g.Points,
		Carryover:  g.Band == s.courses.Classifier().Table().Lowest(),
	}
}

func (s *Server) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (s *Server) listCourses(c *gin.Context) {
	f := store.CourseFilter{Level: c.Query("level"), Semester: c.Query("semester")}
	list, err := s.courses.List(c.Request.Context(), f)
	if err != nil {
		s.fail(c, err)
		return
	}
	views := make([]courseView, len(list))
	for i, cs := range list {
		views[i] = s.view(cs)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(views), "courses": views})
}

func (s *Server) getCourse(c *gin.Context) {
	cs, err := s.courses.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.view(*cs))
}

func (s *Server) createCourse(c *gin.Context) {
	var in courses.CourseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := s.courses.Add(c.Request.Context(), in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.view(*cs))
}

func (s *Server) updateCourse(c *gin.Context) {
	ctx := c.Request.Context()
	existing, err := s.courses.Resolve(ctx, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	// Fields absent from the body keep their stored values.
	in := courses.FromCourse(*existing)
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cs, err := s.courses.Update(ctx, existing.ID, in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.view(*cs))
}

func (s *Server) deleteCourse(c *gin.Context) {
	ctx := c.Request.Context()
	existing, err := s.courses.Resolve(ctx, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	if err := s.courses.Delete(ctx, existing.ID); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getProfile(c *gin.Context) {
	p, err := s.courses.Profile(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) saveProfile(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := s.courses.Profile(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}
	in := p.Input()
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved, err := s.courses.SaveProfile(ctx, in)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (s *Server) summary(c *gin.Context) {
	sum, err := s.courses.Summary(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":       sum,
		"gpa":           sum.DisplayGPA(),
		"cgpa":          sum.DisplayCGPA(),
		"class":         sum.Class.DisplayName(),
		"grading_scale": s.courses.Classifier().Table().Name(),
	})
}

type classifyRequest struct {
	Score *float64 `json:"score" binding:"required"`
}

func (s *Server) classify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score is required"})
		return
	}
	cl := s.courses.Classifier()
	g := cl.Classify(*req.Score)
	c.JSON(http.StatusOK, gin.H{
		"score":     *req.Score,
		"grade":     g.Letter,
		"points":    g.Points,
		"band":      g.Band,
		"table":     g.Table,
		"clamped":   g.Clamped,
		"carryover": g.Band == cl.Table().Lowest(),
	})
}

type aggregateRequest struct {
	Courses []grading.ScoredCourse `json:"courses"`
	Prior   grading.PriorState     `json:"prior"`
}

func (s *Server) aggregate(c *gin.Context) {
	var req aggregateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := s.courses.Engine().Aggregate(req.Courses, req.Prior)
	c.JSON(http.StatusOK, gin.H{
		"result":     res,
		"gpa":        res.DisplayGPA(),
		"cgpa":       res.DisplayCGPA(),
		"class":      grading.ClassOfDegree(res.CGPA).DisplayName(),
		"carryovers": len(res.Carryovers()),
	})
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// chatHistoryLimit bounds how many stored turns are replayed per request.
const chatHistoryLimit = 20

func (s *Server) chat(c *gin.Context) {
	if s.assistant == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service temporarily unavailable"})
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	var history []llm.Message
	if req.SessionID == "" {
		req.SessionID = assistant.NewSessionID()
	} else {
		h, err := s.assistant.History(ctx, req.SessionID, chatHistoryLimit)
		if err != nil {
			s.fail(c, err)
			return
		}
		history = h
	}

	reply, err := s.assistant.Reply(ctx, req.SessionID, history, req.Message)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": req.SessionID,
		"reply":      reply.Text,
		"topic":      reply.Topic,
		"mood":       reply.Mood,
		"source":     reply.Source,
	})
}

// fail maps service errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	var verr *courses.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "fields": verr.Map()})
	case errors.Is(err, courses.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, courses.ErrDuplicateCode):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, courses.ErrAmbiguousID), errors.Is(err, assistant.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		level.Error(s.logger).Log("msg", "request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
