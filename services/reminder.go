package services

import (
	"context"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"ngo-erp-api/deadline"
	"ngo-erp-api/models"
	"ngo-erp-api/store"
)

// DeadlineItem is one entry in the merged upcoming-deadlines list, tagged
// with its source collection and a link target for the client.
type DeadlineItem struct {
	Source         string `json:"source"` // report|safeguarding_activity|project
	ID             uint   `json:"id"`
	Title          string `json:"title"`
	ProjectName    string `json:"project_name,omitempty"`
	DueDate        string `json:"due_date"`
	DaysUntil      int    `json:"days_until"`
	Classification string `json:"classification"`
	Label          string `json:"label"`
	Link           string `json:"link"`
}

// ReminderService merges due dates across reports, safeguarding activities,
// and project end dates. The list is recomputed on every call; nothing is
// cached.
type ReminderService struct {
	stores *store.Stores
}

func NewReminderService(stores *store.Stores) *ReminderService {
	return &ReminderService{stores: stores}
}

// UpcomingDeadlines returns every open deadline classified against today and
// the given reminder window, sorted by due date ascending. Records already in
// a terminal status (submitted reports, completed activities, completed or
// cancelled projects) are excluded.
func (s *ReminderService) UpcomingDeadlines(ctx context.Context, today time.Time, windowDays int) ([]DeadlineItem, error) {
	var items []DeadlineItem

	reports, err := s.stores.Reports.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		if r.Status != models.ReportStatusPending {
			continue
		}
		item, ok := buildItem("report", r.ID, r.Title, r.ProjectName, r.DueDate, today, windowDays)
		if ok {
			item.Link = fmt.Sprintf("/program/reports/%d", r.ID)
			items = append(items, item)
		}
	}

	activities, err := s.stores.Safeguarding.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range activities {
		if a.Status != models.SafeguardingStatusPlanned {
			continue
		}
		item, ok := buildItem("safeguarding_activity", a.ID, a.Title, a.ProjectName, a.DueDate, today, windowDays)
		if ok {
			item.Link = fmt.Sprintf("/program/safeguarding-activities/%d", a.ID)
			items = append(items, item)
		}
	}

	projects, err := s.stores.Projects.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.IsTerminal() {
			continue
		}
		item, ok := buildItem("project", p.ID, p.Name, p.Name, p.EndDate, today, windowDays)
		if ok {
			item.Link = fmt.Sprintf("/program/projects/%d", p.ID)
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].DueDate != items[j].DueDate {
			return items[i].DueDate < items[j].DueDate
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

// buildItem classifies one due date. Records without a parseable date are
// skipped rather than failing the whole aggregation.
func buildItem(source string, id uint, title, projectName, due string, today time.Time, windowDays int) (DeadlineItem, bool) {
	target, err := deadline.ParseDate(due)
	if err != nil {
		return DeadlineItem{}, false
	}
	return DeadlineItem{
		Source:         source,
		ID:             id,
		Title:          title,
		ProjectName:    projectName,
		DueDate:        due,
		DaysUntil:      deadline.DaysUntil(target, today),
		Classification: deadline.Classify(target, today, windowDays),
		Label:          deadline.Label(target, today),
	}, true
}

// BuildDigestHTML renders the reminder email body. Only overdue and due-soon
// items make the digest.
func BuildDigestHTML(items []DeadlineItem, today time.Time) (string, int) {
	var rows []string
	for _, item := range items {
		if item.Classification == deadline.StatusOK {
			continue
		}
		rows = append(rows, fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(strings.ReplaceAll(item.Source, "_", " ")),
			html.EscapeString(item.Title),
			item.DueDate,
			html.EscapeString(item.Label),
		))
	}
	if len(rows) == 0 {
		return "", 0
	}

	var b strings.Builder
	b.WriteString("<h2>Upcoming deadlines</h2>")
	b.WriteString(fmt.Sprintf("<p>As of %s</p>", today.Format(deadline.DateLayout)))
	b.WriteString("<table border=\"1\" cellpadding=\"6\" cellspacing=\"0\">")
	b.WriteString("<tr><th>Type</th><th>Title</th><th>Due date</th><th>Status</th></tr>")
	b.WriteString(strings.Join(rows, ""))
	b.WriteString("</table>")
	return b.String(), len(rows)
}
