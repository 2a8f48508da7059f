package server

import (
	"bytes"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// reloadClient connects a served page to /ws/reload.
const reloadClient = `<script>
(function () {
  var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws/reload");
  ws.onmessage = function (ev) {
    if (JSON.parse(ev.data).type === "reload") { location.reload(); }
  };
})();
</script>
`

// staticHandler serves files from dir. With live reload on, HTML pages get
// the reload client inserted before </body>.
type staticHandler struct {
	dir        string
	liveReload bool
	files      http.Handler
}

func newStaticHandler(dir string, liveReload bool) *staticHandler {
	return &staticHandler{
		dir:        dir,
		liveReload: liveReload,
		files:      http.FileServer(http.Dir(dir)),
	}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.liveReload {
		h.files.ServeHTTP(w, r)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	if strings.HasSuffix(name, "/") || name == "/" {
		name = path.Join(name, "index.html")
	}
	ext := strings.ToLower(path.Ext(name))
	if ext != ".html" && ext != ".htm" {
		h.files.ServeHTTP(w, r)
		return
	}

	full := filepath.Join(h.dir, filepath.FromSlash(name))
	data, err := os.ReadFile(full)
	if err != nil {
		h.files.ServeHTTP(w, r)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, filepath.Base(full), time.Time{}, bytes.NewReader(injectReloadClient(data)))
}

// injectReloadClient inserts the reload client before the last </body>, or
// appends it when the page has none.
func injectReloadClient(page []byte) []byte {
	i := bytes.LastIndex(page, []byte("</body>"))
	if i < 0 {
		i = bytes.LastIndex(page, []byte("</BODY>"))
	}
	if i < 0 {
		return append(page, reloadClient...)
	}
	out := make([]byte, 0, len(page)+len(reloadClient))
	out = append(out, page[:i]...)
	out = append(out, reloadClient...)
	out = append(out, page[i:]...)
	return out
}
