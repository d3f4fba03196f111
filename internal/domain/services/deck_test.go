package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/test/builders"
)

// Mock implementations
type MockDeckSource struct {
	mock.Mock
}

func (m *MockDeckSource) Name() string {
	return "mock"
}

func (m *MockDeckSource) Deck(style entities.Style) (*entities.Deck, error) {
	args := m.Called(style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Deck), args.Error(1)
}

type MockDeckExporter struct {
	mock.Mock
}

func (m *MockDeckExporter) Export(ctx context.Context, deck *entities.Deck, options *entities.ExportOptions) (*entities.ExportResult, error) {
	args := m.Called(ctx, deck, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExportResult), args.Error(1)
}

type MockDeckInspector struct {
	mock.Mock
}

func (m *MockDeckInspector) Inspect(ctx context.Context, path string) (*entities.DeckSummary, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DeckSummary), args.Error(1)
}

func threeSlideDeck() *entities.Deck {
	return builders.NewDeckBuilder().
		WithTitle("Cloud Security").
		WithSlide(builders.NewSlideBuilder().Blank().Build()).
		WithSlide(builders.NewSlideBuilder().Build()).
		WithSlide(builders.NewSlideBuilder().Blank().Build()).
		Build()
}

func pptxOptions() *entities.ExportOptions {
	return &entities.ExportOptions{Format: entities.FormatPowerPoint, OutputPath: "/tmp/deck.pptx"}
}

func TestDeckService_Build(t *testing.T) {
	style := entities.DefaultStyle()
	deck := threeSlideDeck()

	source := new(MockDeckSource)
	exporter := new(MockDeckExporter)
	inspector := new(MockDeckInspector)

	source.On("Deck", style).Return(deck, nil)
	exporter.On("Export", mock.Anything, deck, pptxOptions()).Return(&entities.ExportResult{
		Success:    true,
		Format:     "pptx",
		OutputPath: "/tmp/deck.pptx",
		FileSize:   4096,
	}, nil)
	inspector.On("Inspect", mock.Anything, "/tmp/deck.pptx").Return(&entities.DeckSummary{SlideCount: 3}, nil)

	service := NewDeckService(source, exporter, inspector, nil)
	result, err := service.Build(context.Background(), style, pptxOptions())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "/tmp/deck.pptx", result.OutputPath)
	assert.Equal(t, 3, result.SlideCount)

	source.AssertExpectations(t)
	exporter.AssertExpectations(t)
	inspector.AssertExpectations(t)
}

func TestDeckService_Build_SlideCountMismatch(t *testing.T) {
	style := entities.DefaultStyle()
	deck := threeSlideDeck()

	source := new(MockDeckSource)
	exporter := new(MockDeckExporter)
	inspector := new(MockDeckInspector)

	source.On("Deck", style).Return(deck, nil)
	exporter.On("Export", mock.Anything, deck, mock.Anything).Return(&entities.ExportResult{OutputPath: "/tmp/deck.pptx"}, nil)
	inspector.On("Inspect", mock.Anything, "/tmp/deck.pptx").Return(&entities.DeckSummary{SlideCount: 2}, nil)

	service := NewDeckService(source, exporter, inspector, nil)
	_, err := service.Build(context.Background(), style, pptxOptions())

	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrSlideCountMismatch)
	assert.Contains(t, err.Error(), "built 3, read back 2")
}

func TestDeckService_Build_NonPresentationSkipsReadBack(t *testing.T) {
	style := entities.DefaultStyle()
	deck := threeSlideDeck()
	options := &entities.ExportOptions{Format: entities.FormatMarkdown, OutputPath: "/tmp/deck.md"}

	source := new(MockDeckSource)
	exporter := new(MockDeckExporter)
	inspector := new(MockDeckInspector)

	source.On("Deck", style).Return(deck, nil)
	exporter.On("Export", mock.Anything, deck, options).Return(&entities.ExportResult{OutputPath: "/tmp/deck.md"}, nil)

	service := NewDeckService(source, exporter, inspector, nil)
	result, err := service.Build(context.Background(), style, options)

	require.NoError(t, err)
	assert.Equal(t, 3, result.SlideCount)
	inspector.AssertNotCalled(t, "Inspect", mock.Anything, mock.Anything)
}

func TestDeckService_Build_Errors(t *testing.T) {
	style := entities.DefaultStyle()
	writeErr := errors.New("disk full")

	tests := []struct {
		name    string
		options *entities.ExportOptions
		setup   func(*MockDeckSource, *MockDeckExporter, *MockDeckInspector)
		ctx     func() context.Context
		errMsg  string
		target  error
	}{
		{
			name:    "nil options",
			options: nil,
			setup:   func(*MockDeckSource, *MockDeckExporter, *MockDeckInspector) {},
			errMsg:  "export options cannot be nil",
		},
		{
			name:    "empty output path",
			options: &entities.ExportOptions{Format: entities.FormatPowerPoint},
			setup:   func(*MockDeckSource, *MockDeckExporter, *MockDeckInspector) {},
			errMsg:  "output path cannot be empty",
		},
		{
			name:    "source failure",
			options: pptxOptions(),
			setup: func(s *MockDeckSource, _ *MockDeckExporter, _ *MockDeckInspector) {
				s.On("Deck", style).Return(nil, errors.New("bad style"))
			},
			errMsg: "building deck: bad style",
		},
		{
			name:    "invalid deck",
			options: pptxOptions(),
			setup: func(s *MockDeckSource, _ *MockDeckExporter, _ *MockDeckInspector) {
				s.On("Deck", style).Return(entities.NewDeck("Empty"), nil)
			},
			errMsg: "invalid deck",
		},
		{
			name:    "cancelled before export",
			options: pptxOptions(),
			setup: func(s *MockDeckSource, _ *MockDeckExporter, _ *MockDeckInspector) {
				s.On("Deck", style).Return(threeSlideDeck(), nil)
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			errMsg: "build cancelled",
			target: context.Canceled,
		},
		{
			name:    "export failure",
			options: pptxOptions(),
			setup: func(s *MockDeckSource, e *MockDeckExporter, _ *MockDeckInspector) {
				s.On("Deck", style).Return(threeSlideDeck(), nil)
				e.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(nil, writeErr)
			},
			errMsg: "exporting deck",
			target: writeErr,
		},
		{
			name:    "read back failure",
			options: pptxOptions(),
			setup: func(s *MockDeckSource, e *MockDeckExporter, i *MockDeckInspector) {
				s.On("Deck", style).Return(threeSlideDeck(), nil)
				e.On("Export", mock.Anything, mock.Anything, mock.Anything).Return(&entities.ExportResult{OutputPath: "/tmp/deck.pptx"}, nil)
				i.On("Inspect", mock.Anything, "/tmp/deck.pptx").Return(nil, errors.New("corrupt"))
			},
			errMsg: "reading back /tmp/deck.pptx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := new(MockDeckSource)
			exporter := new(MockDeckExporter)
			inspector := new(MockDeckInspector)
			tt.setup(source, exporter, inspector)

			ctx := context.Background()
			if tt.ctx != nil {
				ctx = tt.ctx()
			}

			service := NewDeckService(source, exporter, inspector, nil)
			result, err := service.Build(ctx, style, tt.options)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.Contains(t, err.Error(), tt.errMsg)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestDeckService_Outline(t *testing.T) {
	style := entities.DefaultStyle()
	deck := threeSlideDeck()

	source := new(MockDeckSource)
	source.On("Deck", style).Return(deck, nil)

	service := NewDeckService(source, new(MockDeckExporter), nil, nil)
	got, err := service.Outline(style)

	require.NoError(t, err)
	assert.Same(t, deck, got)
}
