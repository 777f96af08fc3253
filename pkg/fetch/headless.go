package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	cdpfetch "github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/radarpautas/radar/pkg/config"
)

// Sentinel markers wrapping captured XHR payloads appended to the rendered
// HTML. The HTML extractor falls back to the JSON between these markers when
// readability finds no main text.
const (
	XHRCaptureStart = "<!--RADAR-XHR-CAPTURE-->"
	XHRCaptureEnd   = "<!--/RADAR-XHR-CAPTURE-->"
)

const (
	defaultMaxCaptures  = 5
	defaultCaptureBytes = 1 << 20
	headlessSettleDelay = 2 * time.Second
)

// xhrRecorder accumulates JSON responses whose URL matches the profile's
// headless_capture contract.
type xhrRecorder struct {
	mu          sync.Mutex
	urlContains string
	maxCaptures int
	maxBytes    int64
	requestIDs  []network.RequestID
}

func (r *xhrRecorder) observe(ev *network.EventResponseReceived) {
	if ev.Type != network.ResourceTypeXHR && ev.Type != network.ResourceTypeFetch {
		return
	}
	if !strings.Contains(ev.Response.URL, r.urlContains) {
		return
	}
	if !strings.Contains(strings.ToLower(ev.Response.MimeType), "json") {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.requestIDs) < r.maxCaptures {
		r.requestIDs = append(r.requestIDs, ev.RequestID)
	}
}

// doHeadless renders pageURL in a headless browser with images, fonts and
// stylesheets blocked, then returns the rendered HTML with any captured XHR
// payloads appended between the sentinel markers.
func (s *Service) doHeadless(ctx context.Context, p *config.SourceProfile, pageURL string) (*response, error) {
	timeout := time.Duration(p.Limits.TimeoutS) * time.Second

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(config.InstitutionalUA),
		chromedp.NoSandbox,
		chromedp.Flag("disable-gpu", true),
	)...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	var recorder *xhrRecorder
	if c := p.Metadata.HeadlessCapture; c != nil {
		recorder = &xhrRecorder{
			urlContains: c.URLContains,
			maxCaptures: c.MaxCaptures,
			maxBytes:    c.MaxBytes,
		}
		if recorder.maxCaptures <= 0 {
			recorder.maxCaptures = defaultMaxCaptures
		}
		if recorder.maxBytes <= 0 {
			recorder.maxBytes = defaultCaptureBytes
		}
	}

	chromedp.ListenTarget(runCtx, func(ev interface{}) {
		switch ev := ev.(type) {
		case *cdpfetch.EventRequestPaused:
			go func() {
				c := chromedp.FromContext(runCtx)
				execCtx := cdp.WithExecutor(runCtx, c.Target)
				switch ev.ResourceType {
				case network.ResourceTypeImage, network.ResourceTypeFont,
					network.ResourceTypeStylesheet, network.ResourceTypeMedia:
					_ = cdpfetch.FailRequest(ev.RequestID, network.ErrorReasonBlockedByClient).Do(execCtx)
				default:
					_ = cdpfetch.ContinueRequest(ev.RequestID).Do(execCtx)
				}
			}()
		case *network.EventResponseReceived:
			if recorder != nil {
				recorder.observe(ev)
			}
		}
	})

	start := time.Now()
	var html string
	var captured []string

	err := chromedp.Run(runCtx,
		network.Enable(),
		cdpfetch.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.Sleep(headlessSettleDelay),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		chromedp.ActionFunc(func(actionCtx context.Context) error {
			if recorder == nil {
				return nil
			}
			recorder.mu.Lock()
			ids := append([]network.RequestID(nil), recorder.requestIDs...)
			recorder.mu.Unlock()
			for _, id := range ids {
				body, err := network.GetResponseBody(id).Do(actionCtx)
				if err != nil {
					continue
				}
				if int64(len(body)) > recorder.maxBytes {
					continue
				}
				captured = append(captured, string(body))
			}
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(html)
	for _, payload := range captured {
		b.WriteString("\n")
		b.WriteString(XHRCaptureStart)
		b.WriteString("\n")
		b.WriteString(payload)
		b.WriteString("\n")
		b.WriteString(XHRCaptureEnd)
	}
	body := []byte(b.String())
	if int64(len(body)) > p.Limits.MaxBytes {
		return nil, classified(ClassMaxBytes, nil)
	}

	return &response{
		StatusCode: 200,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       body,
		Latency:    time.Since(start),
	}, nil
}
