package preview

import (
	"context"
	"time"

	"mdpad/internal/editor"
	"mdpad/internal/logging"
	"mdpad/internal/store"
)

type Renderer interface {
	HTML(src string) string
}

// Watch polls the stored document and publishes a fresh render whenever it
// changes. Used by `mdpad serve`, where no editor session runs in-process.
// With nothing stored it shows the document a new editor would open with.
func Watch(ctx context.Context, prefs store.Preferences, r Renderer, hub *Hub, every time.Duration, log logging.Logger) {
	log = logging.OrNoOp(log)
	if every <= 0 {
		every = 750 * time.Millisecond
	}

	last, published := "", false
	poll := func() {
		text, ok := prefs.Load(store.KeyDocument)
		if !ok {
			text = editor.DefaultDocument
		}
		if published && text == last {
			return
		}
		last, published = text, true
		hub.Publish(r.HTML(text))
		log.Debug("preview refreshed", "chars", len(text))
	}

	poll()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll()
		}
	}
}
