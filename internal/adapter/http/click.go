package httpadapter

import (
	"net/http"
	"strconv"

	"vendora-ads/internal/core/domain"
	"vendora-ads/internal/core/port"
)

// handleAdClick handles ad click-throughs. It expects an `ad` query
// parameter carrying the campaign id and optionally an X-User-ID header set
// by the upstream auth layer. The visitor cookie is read when present and
// minted when absent. The response is always a redirect; billing happens as
// a side effect and never influences the destination beyond resolving the
// advertised item. A missing or malformed campaign id degrades to the
// catalog redirect.
func (h *Handler) handleAdClick(w http.ResponseWriter, r *http.Request) {
	req := port.ClickRequest{}
	// a zero id resolves to no campaign, which the accountant turns into
	// the catalog redirect
	req.AdID, _ = strconv.ParseInt(r.URL.Query().Get("ad"), 10, 64)

	if v := r.Header.Get("X-User-ID"); v != "" {
		if uid, err := strconv.ParseInt(v, 10, 64); err == nil {
			req.UserID = &uid
		}
	}

	minted := false
	if ck, err := r.Cookie(h.cookie.Name); err == nil && ck.Value != "" {
		req.VisitorID = ck.Value
	} else {
		req.VisitorID = domain.NewVisitorToken()
		minted = true
	}

	res := h.clicks.RecordClick(r.Context(), req)

	if minted {
		http.SetCookie(w, &http.Cookie{
			Name:     h.cookie.Name,
			Value:    req.VisitorID,
			Path:     "/",
			MaxAge:   int(h.cookie.MaxAge.Seconds()),
			HttpOnly: true,
			Secure:   h.cookie.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, res.RedirectURL, http.StatusFound)
}
