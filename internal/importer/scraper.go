package importer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// PortalCard is one listing card as extracted from the portal DOM.
type PortalCard struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	City     string `json:"city"`
	District string `json:"district"`
	Category string `json:"category"`
	Lat      string `json:"lat"`
	Lng      string `json:"lng"`
	URL      string `json:"url"`
	Image    string `json:"image"`
}

// Scraper drives a headless browser over a portal's search result pages.
type Scraper struct {
	portal   string
	startURL string
	pages    int
}

func NewScraper(portal, startURL string, pages int) *Scraper {
	if pages < 1 {
		pages = 1
	}
	return &Scraper{
		portal:   portal,
		startURL: startURL,
		pages:    pages,
	}
}

func (s *Scraper) Portal() string { return s.portal }

// Fetch collects listing cards from up to s.pages result pages.
func (s *Scraper) Fetch(ctx context.Context) ([]PortalCard, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(
		allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}),
	)
	defer cancelBrowser()

	var all []PortalCard

	for page := 1; page <= s.pages; page++ {
		url := fmt.Sprintf("%s?page=%d", s.startURL, page)
		log.Printf("[IMPORT] scraping %s page %d", s.portal, page)

		cards, err := s.scrapePage(browserCtx, url)
		if err != nil {
			return all, fmt.Errorf("page %d: %w", page, err)
		}

		if len(cards) == 0 {
			break
		}

		all = append(all, cards...)
		time.Sleep(2 * time.Second)
	}

	log.Printf("[IMPORT] %s done, %d cards", s.portal, len(all))
	return all, nil
}

func (s *Scraper) scrapePage(browserCtx context.Context, url string) ([]PortalCard, error) {
	ctx, cancel := context.WithTimeout(browserCtx, 90*time.Second)
	defer cancel()

	var cards []PortalCard

	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.Sleep(5*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`
			(function() {
				var results = [];
				var cards = document.querySelectorAll('[data-listing-id]');
				for (var i = 0; i < cards.length; i++) {
					var card = cards[i];
					var titleEl = card.querySelector('h2, h3, .listing-title');
					var priceEl = card.querySelector('.price, [data-price]');
					var linkEl = card.querySelector('a[href]');
					var imgEl = card.querySelector('img');
					results.push({
						title: titleEl ? titleEl.textContent : '',
						price: priceEl ? priceEl.textContent : '',
						city: card.getAttribute('data-city') || '',
						district: card.getAttribute('data-district') || '',
						category: card.getAttribute('data-category') || '',
						lat: card.getAttribute('data-lat') || '',
						lng: card.getAttribute('data-lng') || '',
						url: linkEl ? linkEl.href : '',
						image: imgEl ? imgEl.src : ''
					});
				}
				return results;
			})()
		`, &cards),
	)
	if err != nil {
		return nil, err
	}

	return cards, nil
}
