//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testEnv holds the isolated directories for one test.
type testEnv struct {
	HomeDir string // WEBGEN_HOME
	WorkDir string // working directory the project is created in
	BinDir  string // prepended to PATH; holds the fake generators
}

// setupTestEnv sandboxes settings and the working directory, and puts an
// empty bin directory at the front of PATH.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script generators are not supported on Windows")
	}

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}

	t.Setenv("WEBGEN_HOME", env.HomeDir)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.WorkDir)

	return env
}

// installGenerator writes an executable shell script named name into the
// bin directory. The script receives the app name as $1.
func (e *testEnv) installGenerator(t *testing.T, name, body string) {
	t.Helper()
	writeFile(t, filepath.Join(e.BinDir, name), "#!/bin/sh\nset -e\n"+body+"\n")
	if err := os.Chmod(filepath.Join(e.BinDir, name), 0755); err != nil {
		t.Fatalf("chmod %s: %v", name, err)
	}
}

// reactGenerator mimics create_react_app: a package.json, a src tree with a
// placeholder header, and a node_modules/.bin symlink.
const reactGenerator = `mkdir -p "$1/src/components/layout" "$1/node_modules/vite/bin" "$1/node_modules/.bin"
echo '{"name": "'"$1"'"}' > "$1/package.json"
echo 'export default function Header() { return null }' > "$1/src/components/layout/Header.jsx"
echo 'body {}' > "$1/src/index.css"
echo '#!/bin/sh' > "$1/node_modules/vite/bin/vite.js"
ln -s ../vite/bin/vite.js "$1/node_modules/.bin/vite"
touch "$1/.DS_Store"`

// fastapiGenerator mimics create_fastapi_app without CORS configured.
const fastapiGenerator = `mkdir -p "$1/app"
printf 'from fastapi import FastAPI\n\napp = FastAPI()\n' > "$1/app/main.py"
echo 'fastapi' > "$1/requirements.txt"`

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertNotExists fails the test if anything exists at path.
func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); err == nil {
		t.Errorf("expected %s NOT to exist", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
