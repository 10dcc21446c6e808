package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/genricoloni/cmustify/internal/cover"
	"github.com/genricoloni/cmustify/internal/domain"
	"github.com/genricoloni/cmustify/internal/domain/mocks"
	"github.com/genricoloni/cmustify/internal/formatter"
	"github.com/genricoloni/cmustify/internal/parser"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// TestDispatcher_Run verifies that every input produces exactly one notification
// with the fixed summary and the formatted body.
func TestDispatcher_Run(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedBody string
	}{
		{
			name:         "Full status line",
			input:        "status playing artist Todd album Reno title super song duration 215",
			expectedBody: "super song by Todd, Reno",
		},
		{
			name:         "Title only",
			input:        "status paused title Hola",
			expectedBody: "Hola",
		},
		{
			name:         "Free text",
			input:        "Hola",
			expectedBody: "Unknown",
		},
		{
			name:         "Empty input",
			input:        "",
			expectedBody: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			notifier := mocks.NewMockNotifier(ctrl)
			notifier.EXPECT().
				Send(gomock.Any(), domain.Notification{Summary: "Cmustify - Current song", Body: tt.expectedBody}).
				Return(nil).
				Times(1)

			d := NewDispatcher(zap.NewNop(), notifier, nil)
			if err := d.Run(context.Background(), tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if want := formatter.FormatNotificationBody(parser.Parse(tt.input)); want != tt.expectedBody {
				t.Errorf("body should equal the formatted parse result %q", want)
			}
		})
	}
}

func TestDispatcher_Run_NotifierErrorIsReturnedUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sendErr := errors.New("org.freedesktop.Notifications was not provided by any .service files")

	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).Return(sendErr).Times(1)

	d := NewDispatcher(zap.NewNop(), notifier, nil)
	if err := d.Run(context.Background(), "title X"); err != sendErr {
		t.Errorf("expected %v, got %v", sendErr, err)
	}
}

// TestDispatcher_Run_Cover checks that album art lookup never changes the
// number of notifications sent.
func TestDispatcher_Run_Cover(t *testing.T) {
	thumb := &domain.CoverImage{Width: 1, Height: 1, RowStride: 4, HasAlpha: true, BitsPerSample: 8, Channels: 4, Data: []byte{0, 0, 0, 255}}

	tests := []struct {
		name          string
		input         string
		setupCovers   func(*mocks.MockCoverLoader)
		expectedCover *domain.CoverImage
	}{
		{
			name:  "Cover attached",
			input: "file /music/Todd/Reno/01.flac title super song",
			setupCovers: func(m *mocks.MockCoverLoader) {
				m.EXPECT().Load(gomock.Any(), "/music/Todd/Reno/01.flac").Return(thumb, nil)
			},
			expectedCover: thumb,
		},
		{
			name:  "Cover not found",
			input: "file /music/01.flac title super song",
			setupCovers: func(m *mocks.MockCoverLoader) {
				m.EXPECT().Load(gomock.Any(), "/music/01.flac").Return(nil, cover.ErrNotFound)
			},
		},
		{
			name:  "Cover disabled",
			input: "file /music/01.flac title super song",
			setupCovers: func(m *mocks.MockCoverLoader) {
				m.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, cover.ErrDisabled)
			},
		},
		{
			name:  "Broken cover",
			input: "file /music/01.flac title super song",
			setupCovers: func(m *mocks.MockCoverLoader) {
				m.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("failed to decode cover: %w", errors.New("unexpected EOF")))
			},
		},
		{
			name:        "Stream has no file",
			input:       "url http://radio.example.com/stream title super song",
			setupCovers: func(m *mocks.MockCoverLoader) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			covers := mocks.NewMockCoverLoader(ctrl)
			tt.setupCovers(covers)

			notifier := mocks.NewMockNotifier(ctrl)
			notifier.EXPECT().
				Send(gomock.Any(), domain.Notification{Summary: Summary, Body: "super song", Cover: tt.expectedCover}).
				Return(nil).
				Times(1)

			d := NewDispatcher(zap.NewNop(), notifier, covers)
			if err := d.Run(context.Background(), tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
