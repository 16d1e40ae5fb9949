package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TradeScope/internal/domain/models"
)

type publisherStub struct {
	published []*models.Report
	err       error
	closed    bool
}

func (p *publisherStub) Publish(_ context.Context, r *models.Report) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, r)
	return nil
}

func (p *publisherStub) Close() error {
	p.closed = true
	return nil
}

type storeStub struct {
	stored []*models.Report
	err    error
	closed bool
}

func (s *storeStub) Init(context.Context) error { return nil }

func (s *storeStub) Store(_ context.Context, r *models.Report) error {
	if s.err != nil {
		return s.err
	}
	s.stored = append(s.stored, r)
	return nil
}

func (s *storeStub) Close() error {
	s.closed = true
	return nil
}

func testReport() *models.Report {
	return &models.Report{
		RunID:        "run-1",
		GeneratedAt:  time.Now(),
		MarketPoints: 3,
		AssetPoints:  3,
	}
}

func TestExportNoneIsNoOp(t *testing.T) {
	pub := &publisherStub{}
	store := &storeStub{}
	e := NewReportExporter(pub, store, newRecorderStub(), "none")

	require.NoError(t, e.Export(context.Background(), testReport()))
	require.Empty(t, pub.published)
	require.Empty(t, store.stored)
}

func TestExportRoutesToKafka(t *testing.T) {
	pub := &publisherStub{}
	rec := newRecorderStub()
	e := NewReportExporter(pub, nil, rec, "kafka")

	require.NoError(t, e.Export(context.Background(), testReport()))
	require.Len(t, pub.published, 1)
	require.Equal(t, 1, rec.exports["kafka/ok"])
}

func TestExportRoutesToClickHouse(t *testing.T) {
	store := &storeStub{}
	rec := newRecorderStub()
	e := NewReportExporter(nil, store, rec, "clickhouse")

	require.NoError(t, e.Export(context.Background(), testReport()))
	require.Len(t, store.stored, 1)
	require.Equal(t, 1, rec.exports["clickhouse/ok"])
}

func TestExportUnknownBackend(t *testing.T) {
	rec := newRecorderStub()
	e := NewReportExporter(nil, nil, rec, "s3")

	err := e.Export(context.Background(), testReport())
	require.Error(t, err)
	require.Equal(t, 1, rec.exports["s3/error"])
}

func TestExportSinkFailure(t *testing.T) {
	pub := &publisherStub{err: errors.New("broker unreachable")}
	rec := newRecorderStub()
	e := NewReportExporter(pub, nil, rec, "kafka")

	err := e.Export(context.Background(), testReport())
	require.Error(t, err)
	require.Equal(t, 1, rec.exports["kafka/error"])
}

func TestExportNilReport(t *testing.T) {
	e := NewReportExporter(nil, nil, newRecorderStub(), "none")
	require.Error(t, e.Export(context.Background(), nil))
}

func TestExporterCloseClosesSinks(t *testing.T) {
	pub := &publisherStub{}
	store := &storeStub{}
	e := NewReportExporter(pub, store, newRecorderStub(), "kafka")

	e.Close()
	require.True(t, pub.closed)
	require.True(t, store.closed)
}
