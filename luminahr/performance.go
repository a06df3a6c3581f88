package luminahr

import (
	"context"
	"net/http"
	"net/url"
)

type PerformanceReview struct {
	ID                  string  `json:"id"`
	EmployeeID          string  `json:"employee_id"`
	EmployeeName        string  `json:"employee_name"`
	ReviewerID          string  `json:"reviewer_id"`
	ReviewerName        string  `json:"reviewer_name"`
	ReviewPeriod        string  `json:"review_period"`
	GoalsAchieved       int     `json:"goals_achieved"`
	QualityScore        int     `json:"quality_score"`
	ProductivityScore   int     `json:"productivity_score"`
	TeamworkScore       int     `json:"teamwork_score"`
	CommunicationScore  int     `json:"communication_score"`
	OverallScore        float64 `json:"overall_score"`
	Feedback            string  `json:"feedback"`
	Strengths           string  `json:"strengths"`
	AreasForImprovement string  `json:"areas_for_improvement"`
	GoalsForNextPeriod  string  `json:"goals_for_next_period"`
	CreatedAt           string  `json:"created_at"`
}

type PerformanceReviewCreate struct {
	EmployeeID          string `json:"employee_id"`
	ReviewPeriod        string `json:"review_period"`
	GoalsAchieved       int    `json:"goals_achieved"`
	QualityScore        int    `json:"quality_score"`
	ProductivityScore   int    `json:"productivity_score"`
	TeamworkScore       int    `json:"teamwork_score"`
	CommunicationScore  int    `json:"communication_score"`
	Feedback            string `json:"feedback"`
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
	GoalsForNextPeriod  string `json:"goals_for_next_period"`
}

type PerformanceReviewList struct {
	Reviews []PerformanceReview `json:"reviews"`
	Total   int                 `json:"total"`
}

// PerformanceAnalytics aggregates review and task outcomes company-wide.
type PerformanceAnalytics struct {
	Reviews struct {
		Total             int     `json:"total"`
		AvgOverallScore   float64 `json:"avg_overall_score"`
		AvgGoalsAchieved  float64 `json:"avg_goals_achieved"`
		ScoreDistribution struct {
			Excellent        int `json:"excellent"`
			Good             int `json:"good"`
			Average          int `json:"average"`
			NeedsImprovement int `json:"needs_improvement"`
		} `json:"score_distribution"`
	} `json:"reviews"`
	Tasks struct {
		Total          int     `json:"total"`
		Completed      int     `json:"completed"`
		Pending        int     `json:"pending"`
		InProgress     int     `json:"in_progress"`
		CompletionRate float64 `json:"completion_rate"`
	} `json:"tasks"`
	TopPerformers []struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		AvgScore float64 `json:"avg_score"`
	} `json:"top_performers"`
}

// PerformanceService handles review cycles and their analytics.
type PerformanceService struct {
	client *Client
}

// CreateReview records a review; the overall score is computed
// server-side from the four category scores.
func (s *PerformanceService) CreateReview(ctx context.Context, req PerformanceReviewCreate) error {
	return s.client.do(ctx, http.MethodPost, "/admin/performance-reviews", nil, req, nil)
}

// All lists company reviews, optionally for one employee (admin only).
func (s *PerformanceService) All(ctx context.Context, employeeID string) (*PerformanceReviewList, error) {
	query := url.Values{}
	if employeeID != "" {
		query.Set("employee_id", employeeID)
	}
	var out PerformanceReviewList
	if err := s.client.do(ctx, http.MethodGet, "/admin/performance-reviews", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// My lists the caller's own reviews.
func (s *PerformanceService) My(ctx context.Context) (*PerformanceReviewList, error) {
	var out PerformanceReviewList
	if err := s.client.do(ctx, http.MethodGet, "/performance-reviews/my", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analytics returns company-wide performance aggregates (admin only).
func (s *PerformanceService) Analytics(ctx context.Context) (*PerformanceAnalytics, error) {
	var out PerformanceAnalytics
	if err := s.client.do(ctx, http.MethodGet, "/admin/analytics/performance", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
