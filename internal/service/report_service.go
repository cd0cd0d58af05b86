package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/catalog"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/minio"
	"Pulseboard/internal/pkg/pdfgen"
	"Pulseboard/internal/repository"
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	log "log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReportService interface {
	CompileReport(ctx context.Context, userID uint64, compileDTO *dto.CompileReportDTO) (*dto.ReportDTO, error)
	GetReport(ctx context.Context, userID uint64, reportID uint64) (*dto.ReportDTO, error)
	DeleteReport(ctx context.Context, userID uint64, reportID uint64) error
}

type reportServiceImpl struct {
	dashboardRepo repository.DashboardRepo
	widgetRepo    repository.WidgetRepo
	reportRepo    repository.ReportRepo
	accountRepo   repository.AccountRepo
	widgetDataSvc WidgetDataService
}

func NewReportService(
	dashboardRepo repository.DashboardRepo,
	widgetRepo repository.WidgetRepo,
	reportRepo repository.ReportRepo,
	accountRepo repository.AccountRepo,
	widgetDataSvc WidgetDataService,
) ReportService {
	return &reportServiceImpl{
		dashboardRepo: dashboardRepo,
		widgetRepo:    widgetRepo,
		reportRepo:    reportRepo,
		accountRepo:   accountRepo,
		widgetDataSvc: widgetDataSvc,
	}
}

type reportEntry struct {
	Title     string
	Current   float64
	Previous  float64
	Change    float64
	Estimated bool
	NoData    bool
}

type reportPageData struct {
	DashboardName string
	ClientName    string
	PeriodFrom    string
	PeriodTo      string
	Entries       []*reportEntry
	HasEstimated  bool
}

// 报告正文模板，排版细节交给打印引擎
const reportTemplate = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><style>
body { font-family: sans-serif; margin: 40px; }
h1 { font-size: 22px; } .period { color: #666; margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; }
th, td { border-bottom: 1px solid #ddd; padding: 8px 12px; text-align: left; }
.up { color: #0a7d32; } .down { color: #c23030; }
.note { margin-top: 24px; font-size: 12px; color: #999; }
</style></head><body>
<h1>{{.DashboardName}}{{if .ClientName}} — {{.ClientName}}{{end}}</h1>
<div class="period">{{.PeriodFrom}} ~ {{.PeriodTo}}</div>
<table>
<tr><th>指标</th><th>当期</th><th>上期</th><th>环比</th></tr>
{{range .Entries}}
<tr><td>{{.Title}}{{if .Estimated}} *{{end}}</td>
{{if .NoData}}<td colspan="3">暂无数据</td>{{else}}
<td>{{printf "%.0f" .Current}}</td>
<td>{{printf "%.0f" .Previous}}</td>
<td class="{{if ge .Change 0.0}}up{{else}}down{{end}}">{{printf "%+.1f%%" .Change}}</td>
{{end}}</tr>
{{end}}
</table>
{{if .HasEstimated}}<div class="note">* 标记的指标包含估算值，仅供参考，不代表平台真实历史数据。</div>{{end}}
</body></html>`

// CompileReport 把看板在指定周期内的全部组件数据汇编成 PDF 并上传。
// 单个组件解析失败记为无数据，不会让整份报告失败
func (s *reportServiceImpl) CompileReport(ctx context.Context, userID uint64, compileDTO *dto.CompileReportDTO) (*dto.ReportDTO, error) {
	from, err := time.Parse(time.DateOnly, compileDTO.From)
	if err != nil {
		return nil, ErrParamInvalid
	}
	to, err := time.Parse(time.DateOnly, compileDTO.To)
	if err != nil || to.Before(from) {
		return nil, ErrParamInvalid
	}

	dashboard, err := s.dashboardRepo.GetDashboardByID(ctx, compileDTO.DashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil {
		return nil, ErrDashboardNotFound
	}
	if dashboard.UserID != userID {
		return nil, UnauthorizedError
	}

	widgets, err := s.widgetRepo.GetWidgetsByDashboardID(ctx, dashboard.ID)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		DashboardID: dashboard.ID,
		PeriodFrom:  from,
		PeriodTo:    to,
		Status:      consts.ReportStatusPending,
	}
	if err = s.reportRepo.CreateReport(ctx, report); err != nil {
		return nil, err
	}

	entries := s.resolveEntries(ctx, widgets, from, to)

	objectName, err := s.renderAndUpload(ctx, dashboard, from, to, entries)
	if err != nil {
		report.Status = consts.ReportStatusFailed
		_ = s.reportRepo.UpdateReport(ctx, report)
		return nil, err
	}

	report.ObjectName = objectName
	report.Status = consts.ReportStatusReady
	if err = s.reportRepo.UpdateReport(ctx, report); err != nil {
		return nil, err
	}
	return s.toReportDTO(ctx, report)
}

func (s *reportServiceImpl) GetReport(ctx context.Context, userID uint64, reportID uint64) (*dto.ReportDTO, error) {
	report, err := s.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	dashboard, err := s.dashboardRepo.GetDashboardByID(ctx, report.DashboardID)
	if err != nil {
		return nil, err
	}
	if dashboard == nil || dashboard.UserID != userID {
		return nil, UnauthorizedError
	}
	return s.toReportDTO(ctx, report)
}

// DeleteReport 删除报告记录并清理已上传的产物
func (s *reportServiceImpl) DeleteReport(ctx context.Context, userID uint64, reportID uint64) error {
	report, err := s.reportRepo.GetReportByID(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}

	dashboard, err := s.dashboardRepo.GetDashboardByID(ctx, report.DashboardID)
	if err != nil {
		return err
	}
	if dashboard == nil || dashboard.UserID != userID {
		return UnauthorizedError
	}

	// 产物清理是尽力而为，对象已丢失不应阻塞记录删除
	if report.ObjectName != "" {
		if err = minio.DeleteObject(ctx, report.ObjectName); err != nil {
			log.WarnContext(ctx, "delete report object failed",
				"report_id", report.ID, "object", report.ObjectName, "err", err)
		}
	}
	return s.reportRepo.DeleteReport(ctx, reportID)
}

// resolveEntries 并发解析各组件数据，保持 position 顺序
func (s *reportServiceImpl) resolveEntries(ctx context.Context, widgets []*model.Widget, from, to time.Time) []*reportEntry {
	entries := make([]*reportEntry, len(widgets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for i, widget := range widgets {
		g.Go(func() error {
			title := s.entryTitle(gctx, widget)
			data, err := s.widgetDataSvc.ResolveWidgetData(gctx, widget.ID, from, to)
			if err != nil {
				log.WarnContext(gctx, "widget resolve failed in report, marked as no data",
					"widget_id", widget.ID, "err", err)
				entries[i] = &reportEntry{Title: title, NoData: true}
				return nil
			}
			entries[i] = &reportEntry{
				Title:     title,
				Current:   data.Current,
				Previous:  data.Previous,
				Change:    data.Change,
				Estimated: data.Source == consts.DataSourceEstimated,
			}
			return nil
		})
	}
	_ = g.Wait()
	return entries
}

// entryTitle 行标题：组件标题优先，其次目录里的指标展示名，最后才是指标 key
func (s *reportServiceImpl) entryTitle(ctx context.Context, widget *model.Widget) string {
	if widget.Title != "" {
		return widget.Title
	}
	if widget.AccountID != nil {
		account, err := s.accountRepo.GetAccountByID(ctx, *widget.AccountID)
		if err == nil && account != nil {
			return catalog.LabelFor(account.Platform, account.PlatformAccountType, widget.Metric)
		}
	}
	return widget.Metric
}

func (s *reportServiceImpl) renderHTML(dashboard *model.Dashboard, from, to time.Time, entries []*reportEntry) (string, error) {
	hasEstimated := false
	for _, entry := range entries {
		if entry.Estimated {
			hasEstimated = true
			break
		}
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = tmpl.Execute(&buf, &reportPageData{
		DashboardName: dashboard.Name,
		ClientName:    dashboard.ClientName,
		PeriodFrom:    from.Format(time.DateOnly),
		PeriodTo:      to.Format(time.DateOnly),
		Entries:       entries,
		HasEstimated:  hasEstimated,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *reportServiceImpl) renderAndUpload(ctx context.Context, dashboard *model.Dashboard, from, to time.Time, entries []*reportEntry) (string, error) {
	html, err := s.renderHTML(dashboard, from, to, entries)
	if err != nil {
		return "", err
	}

	pdf, err := pdfgen.RenderPDF(ctx, html)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("reports/%d/%s.pdf", dashboard.ID, uuid.NewString())
	if err = minio.UploadBytes(ctx, objectName, pdf, "application/pdf"); err != nil {
		return "", err
	}
	return objectName, nil
}

func (s *reportServiceImpl) toReportDTO(ctx context.Context, report *model.Report) (*dto.ReportDTO, error) {
	reportDTO := &dto.ReportDTO{
		ID:          report.ID,
		DashboardID: report.DashboardID,
		PeriodFrom:  report.PeriodFrom.Format(time.DateOnly),
		PeriodTo:    report.PeriodTo.Format(time.DateOnly),
		Status:      report.Status,
	}
	if report.Status == consts.ReportStatusReady && report.ObjectName != "" {
		downloadURL, err := minio.PresignedURL(ctx, report.ObjectName, 24*time.Hour)
		if err != nil {
			log.WarnContext(ctx, "presign report url failed", "report_id", report.ID, "err", err)
		} else {
			reportDTO.DownloadURL = downloadURL
		}
	}
	return reportDTO, nil
}
