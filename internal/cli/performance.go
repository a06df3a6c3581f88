package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/luminahr/luminahr-go/luminahr"
)

func runReviews(ctx context.Context, a *App, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "", "my":
		return reviewsMy(ctx, a)
	case "all":
		return reviewsAll(ctx, a, rest)
	case "create":
		return reviewsCreate(ctx, a, rest)
	case "analytics":
		return reviewsAnalytics(ctx, a)
	default:
		return fmt.Errorf("reviews: unknown subcommand %q", sub)
	}
}

func reviewsMy(ctx context.Context, a *App) error {
	list, err := a.Client.Performance.My(ctx)
	if err != nil {
		return err
	}
	printReviews(a, list.Reviews)
	return nil
}

func reviewsAll(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("reviews all", flag.ContinueOnError)
	employee := fs.String("employee", "", "filter by employee id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := a.Client.Performance.All(ctx, *employee)
	if err != nil {
		return err
	}
	printReviews(a, list.Reviews)
	return nil
}

func reviewsCreate(ctx context.Context, a *App, args []string) error {
	fs := flag.NewFlagSet("reviews create", flag.ContinueOnError)
	employee := fs.String("employee", "", "employee id")
	period := fs.String("period", "", "review period, e.g. 2026-Q3")
	goals := fs.Int("goals", 0, "goals achieved (0-100)")
	quality := fs.Int("quality", 0, "quality score (1-5)")
	productivity := fs.Int("productivity", 0, "productivity score (1-5)")
	teamwork := fs.Int("teamwork", 0, "teamwork score (1-5)")
	communication := fs.Int("communication", 0, "communication score (1-5)")
	feedback := fs.String("feedback", "", "overall feedback")
	strengths := fs.String("strengths", "", "observed strengths")
	improvements := fs.String("improvements", "", "areas for improvement")
	nextGoals := fs.String("next-goals", "", "goals for next period")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *employee == "" || *period == "" {
		return fmt.Errorf("reviews create: -employee and -period are required")
	}

	err := a.Client.Performance.CreateReview(ctx, luminahr.PerformanceReviewCreate{
		EmployeeID:          *employee,
		ReviewPeriod:        *period,
		GoalsAchieved:       *goals,
		QualityScore:        *quality,
		ProductivityScore:   *productivity,
		TeamworkScore:       *teamwork,
		CommunicationScore:  *communication,
		Feedback:            *feedback,
		Strengths:           *strengths,
		AreasForImprovement: *improvements,
		GoalsForNextPeriod:  *nextGoals,
	})
	if err != nil {
		return err
	}
	a.successf("Review recorded for %s", *period)
	return nil
}

func reviewsAnalytics(ctx context.Context, a *App) error {
	analytics, err := a.Client.Performance.Analytics(ctx)
	if err != nil {
		return err
	}

	a.printf("Reviews: %d, avg score %.2f, avg goals %.1f%%\n",
		analytics.Reviews.Total, analytics.Reviews.AvgOverallScore, analytics.Reviews.AvgGoalsAchieved)
	dist := analytics.Reviews.ScoreDistribution
	a.printf("  excellent %d, good %d, average %d, needs improvement %d\n",
		dist.Excellent, dist.Good, dist.Average, dist.NeedsImprovement)
	a.printf("Tasks: %d total, %d completed, completion %.1f%%\n",
		analytics.Tasks.Total, analytics.Tasks.Completed, analytics.Tasks.CompletionRate)
	if len(analytics.TopPerformers) > 0 {
		a.printf("Top performers:\n")
		for _, p := range analytics.TopPerformers {
			a.printf("  %-24s %.2f\n", p.Name, p.AvgScore)
		}
	}
	return nil
}

func printReviews(a *App, reviews []luminahr.PerformanceReview) {
	for _, r := range reviews {
		a.printf("%s  %-10s %-24s overall %.2f  by %s\n",
			r.ID, r.ReviewPeriod, r.EmployeeName, r.OverallScore, r.ReviewerName)
	}
}
