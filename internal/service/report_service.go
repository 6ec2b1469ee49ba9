package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wordkingdom/internal/models"
)

// WorldReport is one world's line in a progress report
type WorldReport struct {
	Key        models.WorldKey   `json:"key"`
	Name       string            `json:"name"`
	Unlocked   bool              `json:"unlocked"`
	Completed  bool              `json:"completed"`
	Stars      int               `json:"stars"`
	BestScore  int               `json:"bestScore"`
	Difficulty models.Difficulty `json:"difficulty"`
	Mastery    float64           `json:"mastery"`
	Attempts   int               `json:"attempts"`
	LastPlayed *time.Time        `json:"lastPlayed,omitempty"`
}

// ProgressReport is the parent-facing summary of a player's journey
type ProgressReport struct {
	PlayerName      string        `json:"playerName"`
	Level           int           `json:"level"`
	Experience      int           `json:"experience"`
	TotalPoints     int           `json:"totalPoints"`
	TotalStars      int           `json:"totalStars"`
	Coins           int           `json:"coins"`
	SessionsCount   int           `json:"sessionsCount"`
	AverageAccuracy float64       `json:"averageAccuracy"`
	ImprovementRate float64       `json:"improvementRate"`
	StrengthAreas   []string      `json:"strengthAreas"`
	FocusAreas      []string      `json:"focusAreas"`
	Worlds          []WorldReport `json:"worlds"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}

// ReportService builds parent progress reports and delivers them by email
type ReportService struct {
	email *EmailService
}

// NewReportService creates a report service
func NewReportService(email *EmailService) *ReportService {
	return &ReportService{email: email}
}

// BuildReport assembles the progress report for a profile. Worlds appear
// in kingdom order regardless of map iteration.
func (s *ReportService) BuildReport(profile *models.PlayerProfile) ProgressReport {
	report := ProgressReport{
		PlayerName:      profile.Name,
		Level:           profile.Level,
		Experience:      profile.Experience,
		TotalPoints:     profile.TotalPoints(),
		TotalStars:      profile.TotalStars(),
		Coins:           profile.Coins,
		SessionsCount:   profile.Analytics.SessionsCount,
		AverageAccuracy: profile.Analytics.AverageAccuracy,
		ImprovementRate: profile.Analytics.ImprovementRate,
		StrengthAreas:   worldNamesFor(profile.Analytics.StrengthAreas),
		FocusAreas:      worldNamesFor(profile.Analytics.FocusAreas),
		GeneratedAt:     time.Now(),
	}

	for _, key := range models.WorldOrder {
		world := profile.World(key)
		if world == nil {
			continue
		}
		report.Worlds = append(report.Worlds, WorldReport{
			Key:        key,
			Name:       models.WorldNames[key],
			Unlocked:   world.Unlocked,
			Completed:  world.Completed,
			Stars:      world.Stars,
			BestScore:  world.BestScore,
			Difficulty: world.Difficulty,
			Mastery:    world.Mastery,
			Attempts:   len(world.ProgressHistory),
			LastPlayed: world.LastPlayed,
		})
	}

	return report
}

// EmailReport sends the progress report to the parent's address
func (s *ReportService) EmailReport(ctx context.Context, toEmail string, report ProgressReport) error {
	subject := fmt.Sprintf("تقرير تقدم %s في مملكة الكلمات والخيال", report.PlayerName)
	return s.email.Send(ctx, toEmail, subject, renderReportHTML(report), renderReportText(report))
}

// ShareText builds the message a player shares after finishing a world
func ShareText(profile *models.PlayerProfile) string {
	return fmt.Sprintf("حصلت على %d نقطة و%d نجوم في مملكة الكلمات والخيال! 🏰✨ هل يمكنك التغلب علي؟",
		profile.TotalPoints(), profile.TotalStars())
}

func worldNamesFor(keys []models.WorldKey) []string {
	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, models.WorldNames[key])
	}
	return names
}

func renderReportHTML(report ProgressReport) string {
	var worlds strings.Builder
	for _, w := range report.Worlds {
		status := "مقفل"
		if w.Completed {
			status = "مكتمل"
		} else if w.Unlocked {
			status = "مفتوح"
		}
		worlds.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%d ⭐</td><td>%d</td><td>%.0f%%</td></tr>\n",
			w.Name, status, w.Stars, w.BestScore, w.Mastery*100))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
	<meta charset="UTF-8">
	<style>
		body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; direction: rtl; }
		.container { max-width: 600px; margin: 0 auto; padding: 20px; }
		.header { background-color: #7c4dff; color: white; padding: 20px; text-align: center; border-radius: 5px 5px 0 0; }
		.content { background-color: #f9f9f9; padding: 30px; border-radius: 0 0 5px 5px; }
		table { width: 100%%; border-collapse: collapse; }
		td, th { padding: 8px; border-bottom: 1px solid #ddd; text-align: right; }
		.footer { text-align: center; margin-top: 20px; font-size: 12px; color: #666; }
	</style>
</head>
<body>
	<div class="container">
		<div class="header">
			<h1>تقرير تقدم %s</h1>
		</div>
		<div class="content">
			<p>المستوى: %d | النقاط: %d | النجوم: %d ⭐</p>
			<p>عدد الجلسات: %d | متوسط الدقة: %.0f%%</p>
			<table>
				<tr><th>العالم</th><th>الحالة</th><th>النجوم</th><th>أفضل نتيجة</th><th>الإتقان</th></tr>
				%s
			</table>
			<p>نقاط القوة: %s</p>
			<p>مجالات التركيز: %s</p>
		</div>
		<div class="footer">
			<p>رسالة آلية من مملكة الكلمات والخيال. الرجاء عدم الرد.</p>
		</div>
	</div>
</body>
</html>
`, report.PlayerName, report.Level, report.TotalPoints, report.TotalStars,
		report.SessionsCount, report.AverageAccuracy*100, worlds.String(),
		joinOrDash(report.StrengthAreas), joinOrDash(report.FocusAreas))
}

func renderReportText(report ProgressReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "تقرير تقدم %s\n\n", report.PlayerName)
	fmt.Fprintf(&b, "المستوى: %d | النقاط: %d | النجوم: %d\n", report.Level, report.TotalPoints, report.TotalStars)
	fmt.Fprintf(&b, "عدد الجلسات: %d | متوسط الدقة: %.0f%%\n\n", report.SessionsCount, report.AverageAccuracy*100)
	for _, w := range report.Worlds {
		fmt.Fprintf(&b, "- %s: %d نجوم، أفضل نتيجة %d، إتقان %.0f%%\n", w.Name, w.Stars, w.BestScore, w.Mastery*100)
	}
	fmt.Fprintf(&b, "\nنقاط القوة: %s\n", joinOrDash(report.StrengthAreas))
	fmt.Fprintf(&b, "مجالات التركيز: %s\n", joinOrDash(report.FocusAreas))
	return b.String()
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, "، ")
}
