package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/activity"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/autobreak"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/employee"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/report"
	"github.com/fasihgds-afk/activity-detector-backend/internal/domain/settings"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/daterange"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/shift"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/timeutil"
	"github.com/fasihgds-afk/activity-detector-backend/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	activityRepo  activity.ActivityRepository
	autoBreakRepo autobreak.AutoBreakRepository
	settingsRepo  settings.SettingsRepository
	resolver      *shift.Resolver
	now           func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	activityRepo activity.ActivityRepository,
	autoBreakRepo autobreak.AutoBreakRepository,
	settingsRepo settings.SettingsRepository,
	resolver *shift.Resolver,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:  employeeRepo,
		activityRepo:  activityRepo,
		autoBreakRepo: autoBreakRepo,
		settingsRepo:  settingsRepo,
		resolver:      resolver,
		now:           time.Now,
	}
}

// resolveWindow turns validated, defaulted bounds into the echoed strings and the
// clamped UTC window used for the queries.
func resolveWindow(req report.ReportRequest) (report.RangeInfo, daterange.Range) {
	from, _ := validator.IsValidDate(req.From)
	to, _ := validator.IsValidDate(req.To)

	r := daterange.FromDates(from, to)
	return report.RangeInfo{
		From:          req.From,
		To:            req.To,
		EffectiveFrom: timeutil.ISO(r.From),
		EffectiveTo:   timeutil.ISO(r.To),
	}, r
}

// BuildReport implements report.ReportService.
func (s *ReportServiceImpl) BuildReport(ctx context.Context, req report.ReportRequest) (report.Report, error) {
	req.From, req.To = daterange.Defaults(req.From, req.To, s.now())
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	rangeInfo, window := resolveWindow(req)

	result, err := s.build(ctx, req, rangeInfo, window)
	if err != nil {
		slog.Error("failed to build report", "from", rangeInfo.From, "to", rangeInfo.To, "role", req.Caller.Role, "error", err)
		return report.Report{}, report.ErrReportBuildFailed
	}
	return result, nil
}

func (s *ReportServiceImpl) build(ctx context.Context, req report.ReportRequest, rangeInfo report.RangeInfo, window daterange.Range) (report.Report, error) {
	var filter employee.EmployeeFilter
	if req.Caller.IsEmployee() {
		empID := req.Caller.EmpID
		filter.EmpID = &empID
	}

	var (
		employees []employee.Employee
		current   settings.Settings
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// An employee token without emp_id sees nobody.
		if filter.EmpID != nil && *filter.EmpID == "" {
			return nil
		}
		list, err := s.employeeRepo.List(gCtx, filter)
		if err != nil {
			return fmt.Errorf("list employees: %w", err)
		}
		employees = list
		return nil
	})

	g.Go(func() error {
		st, err := s.settingsRepo.Get(gCtx)
		if errors.Is(err, settings.ErrSettingsNotFound) {
			st = settings.Default()
		} else if err != nil {
			return fmt.Errorf("get settings: %w", err)
		}
		current = st
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.Report{}, err
	}

	result := report.Report{
		Employees: []report.EmployeeReport{},
		Settings:  settings.NewSettingsResponse(current),
		Range:     rangeInfo,
	}
	if len(employees) == 0 {
		return result, nil
	}

	names := make([]string, 0, len(employees))
	logsByUser := make(map[string][]activity.ActivityLog, len(employees))
	breaksByUser := make(map[string][]autobreak.AutoBreak, len(employees))
	for _, e := range employees {
		if _, seen := logsByUser[e.Name]; seen {
			continue
		}
		names = append(names, e.Name)
		logsByUser[e.Name] = nil
		breaksByUser[e.Name] = nil
	}

	var (
		logs   []activity.ActivityLog
		breaks []autobreak.AutoBreak
	)

	g, gCtx = errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.activityRepo.ListOverlapping(gCtx, names, window)
		if err != nil {
			return fmt.Errorf("list activity logs: %w", err)
		}
		logs = list
		return nil
	})

	g.Go(func() error {
		list, err := s.autoBreakRepo.ListOverlapping(gCtx, names, window)
		if err != nil {
			return fmt.Errorf("list auto breaks: %w", err)
		}
		breaks = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return report.Report{}, err
	}

	for _, l := range logs {
		if bucket, ok := logsByUser[l.User]; ok {
			logsByUser[l.User] = append(bucket, l)
		}
	}
	for _, b := range breaks {
		if bucket, ok := breaksByUser[b.User]; ok {
			breaksByUser[b.User] = append(bucket, b)
		}
	}

	now := s.now()
	result.Employees = make([]report.EmployeeReport, 0, len(employees))
	for _, e := range employees {
		userLogs := logsByUser[e.Name]
		tl := BuildTimeline(s.resolver, e, userLogs, breaksByUser[e.Name], now)

		result.Employees = append(result.Employees, report.EmployeeReport{
			ID:                  e.ID,
			EmpID:               e.EmpID,
			Name:                e.Name,
			Department:          e.Department,
			ShiftStart:          e.ShiftStart,
			ShiftEnd:            e.ShiftEnd,
			CreatedAt:           timeutil.ISOPtr(e.CreatedAt),
			LatestStatus:        DeriveLatestStatus(userLogs),
			HasOngoingIdle:      tl.HasOngoingIdle,
			HasOngoingAutoBreak: tl.HasOngoingAutoBreak,
			IsInShiftNow:        s.resolver.IsInShift(e.ShiftStart, e.ShiftEnd, now),
			IdleSessions:        tl.Sessions,
		})
	}

	return result, nil
}
