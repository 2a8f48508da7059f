package site

// pageTemplate is the html/template for a WordWebNav page. The Generator
// meta tag is the signature that identifies a generated page.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name=Generator content="WordWebNav, version {{.Version}}">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
{{if .Title}}<title>{{.Title}}</title>
{{end}}{{if .Description}}<meta name="description" content="{{.Description}}">
{{end}}<link rel="stylesheet" href="{{.StylesheetURL}}">
{{.WordHead}}{{.AdditionalHTML}}
{{if .Wasm}}<script>window.wwnLayoutMetrics = {{.Metrics}};</script>
<script src="{{.WasmExecURL}}"></script>
<script>
(function () {
  var go = new Go();
  WebAssembly.instantiateStreaming(fetch({{.WasmURL}}), go.importObject).then(function (r) { go.run(r.instance); });
})();
</script>
{{else}}<script src="{{.ScriptURL}}"></script>
{{end}}</head>
{{.BodyOpenTag}}
<div id="{{.IDs.HeaderBar}}">
{{.HeaderBar}}</div>
<div id="{{.IDs.Container}}">
<div id="{{.IDs.Nav}}">
{{.TOC}}</div>
<div id="{{.IDs.Splitter}}"></div>
<div id="{{.IDs.Doc}}">
{{.DocumentText}}{{.Trailer}}</div>
</div>
</body>
</html>
`

// cssTemplate renders word_web_nav.css. The percentage defaults follow the
// same arithmetic as layout.Metrics.DefaultSplit, so the page looks right
// before the layout engine reconciles it.
const cssTemplate = `/* word_web_nav.css: generated by wwn. Pane budgets match word_web_nav.js. */
html, body {
  margin: 0;
  padding: 0;
  height: 100%;
  overflow: hidden;
}

#{{.IDs.HeaderBar}} {
  position: absolute;
  top: 0;
  left: 0;
  right: 0;
  height: {{.M.HeaderHeight}}px;
  box-sizing: border-box;
  padding: 0 12px;
  line-height: {{.HeaderLine}}px;
  border-bottom: 1px solid #c8c8c8;
  background: #f3f3f3;
  font-family: Calibri, Arial, sans-serif;
  font-size: 15px;
  overflow: hidden;
}

#{{.IDs.Container}} {
  position: absolute;
  top: {{.M.HeaderHeight}}px;
  left: 0;
  right: 0;
  bottom: 0;
  padding: 0;
  overflow: hidden;
}

#{{.IDs.Nav}} {
  position: absolute;
  top: 0;
  bottom: 0;
  left: 0;
  width: calc({{.NavPct}}% - {{.M.NavPadding}}px);
  padding: 0 0 0 {{.M.NavPadding}}px;
  overflow: auto;
  white-space: nowrap;
}

#{{.IDs.Splitter}} {
  position: absolute;
  top: 0;
  bottom: 0;
  left: calc({{.NavPct}}%);
  width: {{.M.SplitterWidth}}px;
  background: #e6e6e6;
  cursor: col-resize;
  touch-action: none;
}

#{{.IDs.Doc}} {
  position: absolute;
  top: 0;
  bottom: 0;
  left: calc({{.NavPct}}% + {{.M.SplitterWidth}}px);
  width: calc({{.DocPct}}% - {{.DocReserved}}px);
  padding: 0 {{.M.DocPaddingRight}}px 0 {{.M.DocPaddingLeft}}px;
  border-left: {{.M.DocBorder}}px solid #d0d0d0;
  overflow: auto;
}

a.tocAnchor, a.tocAnchor:visited, span.tocAnchor {
  color: inherit;
  text-decoration: none;
}

a.tocAnchor:hover {
  text-decoration: underline;
}

.headerBarText {
  color: #333333;
}

a.headerBarHref, a.headerBarHref:visited {
  text-decoration: none;
}

a.headerBarHref:hover {
  text-decoration: underline;
}
`

// jsTemplate renders word_web_nav.js, the in-page layout engine. It mirrors
// the layout package: the same geometry, containment and debounced reload.
const jsTemplate = `/* word_web_nav.js: generated by wwn. Pane budgets match word_web_nav.css. */
(function () {
  "use strict";

  var NAV_PADDING = {{.M.NavPadding}};
  var SPLITTER_WIDTH = {{.M.SplitterWidth}};
  var DOC_RESERVED = {{.DocReserved}};
  var DEFAULT_FRACTION = {{.M.DefaultFraction}};
  var RELOAD_DELAY_MS = {{.ReloadDelayMS}};

  function geometry(total, navTotal) {
    return {
      navWidth: Math.max(0, navTotal - NAV_PADDING),
      splitterLeft: navTotal,
      docLeft: navTotal + SPLITTER_WIDTH,
      docWidth: Math.max(0, total - navTotal - DOC_RESERVED)
    };
  }

  function defaultSplit(total) {
    total = Math.max(0, total);
    var navWidth = Math.max(0, Math.floor(total * DEFAULT_FRACTION) - NAV_PADDING);
    return geometry(total, navWidth + NAV_PADDING);
  }

  function draggedSplit(total, split) {
    return geometry(Math.max(0, total), Math.max(0, split));
  }

  function containment(total, top) {
    return { total: total, min: NAV_PADDING, max: Math.max(0, total) - DOC_RESERVED, top: top };
  }

  function clamp(bounds, x) {
    if (x > bounds.max) { x = bounds.max; }
    if (x < bounds.min) { x = bounds.min; }
    return x;
  }

  function px(v) {
    var f = parseFloat(v);
    return isNaN(f) ? 0 : f;
  }

  function contentWidth(el) {
    var style = window.getComputedStyle(el);
    var w = el.clientWidth - px(style.paddingLeft) - px(style.paddingRight);
    return w < 0 ? 0 : Math.floor(w);
  }

  function init() {
    var container = document.getElementById("{{.IDs.Container}}");
    var nav = document.getElementById("{{.IDs.Nav}}");
    var splitter = document.getElementById("{{.IDs.Splitter}}");
    var doc = document.getElementById("{{.IDs.Doc}}");
    if (!container || !nav || !splitter || !doc) {
      return;
    }

    var bounds = null;
    function setup() {
      bounds = containment(contentWidth(container), Math.floor(container.getBoundingClientRect().top));
    }

    var g = defaultSplit(contentWidth(container));
    nav.style.width = g.navWidth + "px";
    splitter.style.left = g.splitterLeft + "px";
    doc.style.left = g.docLeft + "px";
    doc.style.width = g.docWidth + "px";
    setup();

    var dragging = false;
    var grab = 0;
    splitter.addEventListener("pointerdown", function (ev) {
      ev.preventDefault();
      setup();
      dragging = true;
      grab = ev.clientX - splitter.getBoundingClientRect().left;
      splitter.setPointerCapture(ev.pointerId);
    });
    splitter.addEventListener("pointermove", function (ev) {
      if (!dragging) {
        return;
      }
      var origin = container.getBoundingClientRect().left;
      var left = clamp(bounds, Math.floor(ev.clientX - origin - grab));
      splitter.style.left = left + "px";
      var d = draggedSplit(bounds.total, left);
      nav.style.width = d.navWidth + "px";
      doc.style.left = d.docLeft + "px";
      doc.style.width = d.docWidth + "px";
    });
    function end(ev) {
      if (!dragging) {
        return;
      }
      dragging = false;
      splitter.releasePointerCapture(ev.pointerId);
    }
    splitter.addEventListener("pointerup", end);
    splitter.addEventListener("pointercancel", end);

    var timer = null;
    var reloading = false;
    window.addEventListener("resize", function () {
      if (reloading) {
        return;
      }
      if (timer !== null) {
        clearTimeout(timer);
      }
      timer = setTimeout(function () {
        timer = null;
        reloading = true;
        window.location.reload();
      }, RELOAD_DELAY_MS);
    });
  }

  if (document.readyState === "complete") {
    init();
  } else {
    window.addEventListener("load", init);
  }
})();
`
