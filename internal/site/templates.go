package site

// pageTemplate is the HTML shell for the portfolio page. The theme toolbar,
// the data-theme attribute, and the data-i18n hooks form the contract between
// the generated script, the stylesheet, and the server APIs.
const pageTemplate = `<!DOCTYPE html>
<html lang="{{.Lang}}" data-theme="{{.InitialMode}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="description" content="{{.Description}}">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header class="site-header" id="site-header">
  <span class="site-title" data-i18n="site.title">{{.Title}}</span>
  <nav class="theme-toolbar" id="theme-toolbar">
    <button class="theme-toggle" id="theme-toggle" type="button" aria-label="Switch theme">
      <span class="glyph" id="theme-glyph">{{.Glyph}}</span>
    </button>
    <div class="theme-dropdown" id="theme-dropdown">
      <a href="#" class="theme-option" data-theme-option="light">
        <span class="glyph option-icon">light_mode</span>
        <span data-i18n="theme.light">Light</span>
      </a>
      <a href="#" class="theme-option" data-theme-option="dark">
        <span class="glyph option-icon">dark_mode</span>
        <span data-i18n="theme.dark">Dark</span>
      </a>
      <a href="#" class="theme-option" data-theme-option="system">
        <span class="glyph option-icon">routine</span>
        <span data-i18n="theme.system">System</span>
      </a>
    </div>
  </nav>
</header>
<main class="sections">
{{range $i, $s := .Sections}}  <section class="panel" id="{{$s.ID}}">
    <h2 data-i18n="section.{{$s.ID}}">{{$s.Title}}</h2>
    <div class="panel-body">{{$s.Content}}</div>
  </section>
{{end}}</main>
<footer class="site-footer" id="site-footer">
  <span data-i18n="footer.copyright">&copy; {{.Year}} {{.Author}}</span>
</footer>
<script src="script.js"></script>
</body>
</html>
`

// cssContent is the stylesheet written alongside the generated page. It is
// the sole consumer of the data-theme attribute and the expanded/show/
// visible/show-dropdown class names the script toggles.
const cssContent = `:root {
  --bg: #fdfdfd;
  --fg: #1c1c1e;
  --accent: #3a6ea5;
  --panel-bg: #f2f2f4;
  --shadow: rgba(0, 0, 0, 0.12);
}

[data-theme="dark"] {
  --bg: #161618;
  --fg: #ececf0;
  --accent: #7aa2d6;
  --panel-bg: #222226;
  --shadow: rgba(0, 0, 0, 0.5);
}

* { box-sizing: border-box; }

body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font-family: -apple-system, "Segoe UI", Roboto, sans-serif;
  transition: background 0.3s ease, color 0.3s ease;
}

.site-header, .site-footer {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem 2rem;
}

.glyph {
  font-family: "Material Symbols Outlined", monospace;
  font-variation-settings: "FILL" 0, "wght" 400;
}

.glyph.pressed { font-variation-settings: "FILL" 1, "wght" 700; }

.theme-toolbar { position: relative; }

.theme-toggle {
  background: none;
  border: none;
  color: var(--fg);
  cursor: pointer;
  font-size: 1.4rem;
}

.theme-dropdown {
  display: none;
  position: absolute;
  right: 0;
  background: var(--panel-bg);
  border-radius: 8px;
  box-shadow: 0 4px 16px var(--shadow);
  min-width: 10rem;
  z-index: 10;
}

.theme-dropdown.show-dropdown { display: block; }

.theme-option {
  display: flex;
  align-items: center;
  gap: 0.5rem;
  padding: 0.6rem 1rem;
  color: var(--fg);
  text-decoration: none;
}

.theme-option.filled .option-icon {
  font-variation-settings: "FILL" 1, "wght" 500;
  color: var(--accent);
}

@keyframes glyph-pop {
  0% { transform: scale(1) rotate(0deg); }
  50% { transform: scale(1.25) rotate(20deg); }
  100% { transform: scale(1) rotate(0deg); }
}

.glyph.animating { animation: glyph-pop 0.35s ease; }

.sections {
  display: flex;
  gap: 1.5rem;
  padding: 1rem 2rem;
}

.panel {
  flex: 1;
  background: var(--panel-bg);
  border-radius: 12px;
  padding: 1.5rem;
  opacity: 0;
  transform: translateY(12px);
  transition: flex 0.4s ease, opacity 0.5s ease, transform 0.5s ease;
}

.panel.show {
  opacity: 1;
  transform: none;
}

.panel.expanded { flex: 2.2; }

@media (max-width: 767px) {
  .sections { flex-direction: column; }

  .theme-toolbar {
    position: fixed;
    right: 1rem;
    bottom: 1.25rem;
    opacity: 0;
    pointer-events: none;
    transform: translateY(8px);
    transition: opacity 0.25s ease, transform 0.25s ease;
  }

  .theme-toolbar.visible {
    opacity: 1;
    pointer-events: auto;
    transform: none;
  }

  .theme-dropdown { bottom: 2.6rem; right: 0; }
}
`

// jsContent is the client runtime. It mirrors the Go state machines in
// internal/theme and internal/hoverzone: same breakpoint, same scroll
// threshold, same preference/mode derivation, same class names.
const jsContent = `(function () {
  'use strict';

  var BREAKPOINT = 768;
  var SCROLL_THRESHOLD = 100;
  var GLYPHS = { system: 'routine', dark: 'dark_mode', light: 'light_mode' };

  var root = document.documentElement;
  var toolbar = document.getElementById('theme-toolbar');
  var toggle = document.getElementById('theme-toggle');
  var glyph = document.getElementById('theme-glyph');
  var dropdown = document.getElementById('theme-dropdown');
  var media = window.matchMedia('(prefers-color-scheme: dark)');

  var isMobile = function () { return window.innerWidth < BREAKPOINT; };

  // --- Theme controller -------------------------------------------------

  function effectiveMode(pref) {
    if (pref === 'system') return media.matches ? 'dark' : 'light';
    return pref === 'dark' ? 'dark' : 'light';
  }

  function oneShot(el) {
    el.classList.remove('animating');
    void el.offsetWidth;
    el.classList.add('animating');
    el.addEventListener('animationend', function handler() {
      el.classList.remove('animating');
      el.removeEventListener('animationend', handler);
    });
  }

  function applyTheme(pref, animate) {
    if (pref !== 'light' && pref !== 'dark' && pref !== 'system') {
      console.error('unrecognized theme preference: ' + pref);
      pref = 'system';
    }

    root.setAttribute('data-theme', effectiveMode(pref));
    glyph.textContent = GLYPHS[pref];

    var selectedIcon = null;
    dropdown.querySelectorAll('[data-theme-option]').forEach(function (opt) {
      var mine = opt.getAttribute('data-theme-option') === pref;
      opt.classList.toggle('filled', mine);
      if (mine) selectedIcon = opt.querySelector('.option-icon');
    });

    try { localStorage.setItem('theme', pref); } catch (e) { /* private mode */ }
    fetch('/api/theme', {
      method: 'PUT',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ preference: pref })
    }).catch(function () {});

    if (animate !== false) {
      oneShot(glyph);
      if (selectedIcon) oneShot(selectedIcon);
    }
  }

  var stored = null;
  try { stored = localStorage.getItem('theme'); } catch (e) {}
  if (stored !== 'light' && stored !== 'dark' && stored !== 'system') stored = 'system';
  applyTheme(stored, false);

  media.addEventListener('change', function () {
    var pref = null;
    try { pref = localStorage.getItem('theme'); } catch (e) {}
    if (pref === null || pref === 'system') applyTheme('system');
  });

  toggle.addEventListener('click', function (e) {
    e.preventDefault();
    dropdown.classList.toggle('show-dropdown');
  });

  dropdown.addEventListener('click', function (e) {
    var opt = e.target.closest('[data-theme-option]');
    if (!opt) return;
    e.preventDefault();
    applyTheme(opt.getAttribute('data-theme-option'));
    if (isMobile()) dropdown.classList.remove('show-dropdown');
  });

  ['pointerdown', 'touchstart'].forEach(function (ev) {
    toggle.addEventListener(ev, function () { glyph.classList.add('pressed'); });
  });
  ['pointerup', 'pointerleave', 'touchend', 'touchcancel'].forEach(function (ev) {
    toggle.addEventListener(ev, function () { glyph.classList.remove('pressed'); });
  });

  document.addEventListener('click', function (e) {
    if (isMobile() && !toolbar.contains(e.target)) {
      dropdown.classList.remove('show-dropdown');
    }
  });

  // --- Floating toolbar (mobile only) -----------------------------------

  var scrollBaseline = window.scrollY;

  window.addEventListener('scroll', function () {
    var y = window.scrollY;
    if (isMobile()) {
      if (y > SCROLL_THRESHOLD && y > scrollBaseline) {
        toolbar.classList.add('visible');
      } else {
        toolbar.classList.remove('visible');
        dropdown.classList.remove('show-dropdown');
      }
    } else {
      toolbar.classList.remove('visible');
    }
    scrollBaseline = y;
  });

  window.addEventListener('resize', function () {
    if (!isMobile()) {
      toolbar.classList.remove('visible');
      dropdown.classList.remove('show-dropdown');
    }
  });

  // --- Localization ------------------------------------------------------

  function canonicalize(tag) {
    var lower = (tag || '').toLowerCase().replace(/_/g, '-');
    if (lower === 'zh' || lower.indexOf('zh-') === 0) {
      if (lower.indexOf('hant') >= 0 || /^zh-(tw|hk|mo)/.test(lower)) return 'zh-TW';
      return 'zh-CN';
    }
    return lower;
  }

  fetch('translations.json')
    .then(function (r) {
      if (!r.ok) throw new Error('status ' + r.status);
      return r.json();
    })
    .then(function (data) {
      var want = canonicalize(navigator.language);
      var lang = null;
      Object.keys(data).forEach(function (code) {
        if (canonicalize(code) === want) lang = code;
      });
      if (!lang) {
        var base = want.split('-')[0];
        Object.keys(data).forEach(function (code) {
          if (!lang && canonicalize(code).split('-')[0] === base) lang = code;
        });
      }
      if (!lang) lang = 'en';
      var strings = data[lang] || {};
      document.querySelectorAll('[data-i18n]').forEach(function (el) {
        var key = el.getAttribute('data-i18n');
        if (strings[key]) el.textContent = strings[key];
      });
    })
    .catch(function (err) {
      console.warn('translations unavailable: ' + err.message);
    });

  // --- Section reveal and hover zones (desktop only) ---------------------

  var panels = document.querySelectorAll('.panel');
  var reveal = function () {
    panels.forEach(function (p) {
      if (p.getBoundingClientRect().top < window.innerHeight - 40) {
        p.classList.add('show');
      }
    });
  };
  window.addEventListener('scroll', reveal);
  reveal();

  if (window.innerWidth >= BREAKPOINT && panels.length >= 2) {
    var header = document.getElementById('site-header');
    var footer = document.getElementById('site-footer');
    var suppressed = false;

    [header, footer].forEach(function (region) {
      if (!region) return;
      region.addEventListener('pointerenter', function () { suppressed = true; });
      region.addEventListener('pointerleave', function () { suppressed = false; });
    });

    var collapse = function () {
      panels[0].classList.remove('expanded');
      panels[1].classList.remove('expanded');
    };

    document.addEventListener('pointermove', function (e) {
      if (suppressed) return;
      var third = window.innerWidth / 3;
      if (e.clientX < third) {
        panels[0].classList.add('expanded');
        panels[1].classList.remove('expanded');
      } else if (e.clientX >= window.innerWidth - third) {
        panels[0].classList.remove('expanded');
        panels[1].classList.add('expanded');
      } else {
        collapse();
      }
    });

    document.addEventListener('pointerleave', collapse);
  }

  // --- Live reload (dev server only; fails quietly elsewhere) -------------

  if ('WebSocket' in window && location.protocol !== 'file:') {
    try {
      var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(proto + location.host + '/ws/livereload');
      ws.onmessage = function (msg) {
        if (msg.data === 'reload') location.reload();
      };
      ws.onerror = function () { ws.close(); };
    } catch (e) {}
  }
})();
`
