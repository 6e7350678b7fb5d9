package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/AlyyanAhmed21/ai-portfolio/internal/core/ports/driven"
	"github.com/AlyyanAhmed21/ai-portfolio/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads LLM prompts from user-editable files on disk.
// Prompts are loaded from a configurable directory with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first accessed,
// not in the constructor. This makes testing easier and avoids unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts.
// These are used when user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptRouteQuery: `You are a query routing expert. Classify the user's question into exactly one of two categories:

1. personal_info: questions about Alyyan's skills, education, experience, contact details, or personal background.
2. project_info: questions about specific technical projects, repositories, code, or architecture.

User Question: "%s"

Respond with exactly one word, either personal_info or project_info, and nothing else.

Category:`,

	driven.PromptAnswer: `### ROLE ###
You are an expert AI assistant for Alyyan Ahmed's professional portfolio, named "PortfolioAI".
You must be professional, articulate, and provide well-structured, readable answers.

### TASK ###
Your task is to answer questions about Alyyan Ahmed based *exclusively* on the provided context information.
Do not use any external knowledge.

### FORMATTING RULES ###
- **Use Markdown for all formatting.**
- Use **bolding** for emphasis on key terms, technologies, or titles.
- Use bullet points (using ` + "`-`" + `) for lists of skills, projects, or responsibilities.
- Keep answers concise and to the point.

### BEHAVIORAL RULES ###
1. **Analyze the User's Question:** Understand the user's intent.
2. **Scan the Context:** Find the answer only within the provided context.
3. **Synthesize a Professional Answer:** Formulate a direct answer using the specified Markdown formatting.
4. **Handle Missing Information:** If the answer is not in the context, you MUST state: "Based on the provided information, I cannot answer that question." Do not apologize or guess.
5. **Self-Awareness:** If the user asks about "you" (the AI), your purpose, or your architecture, you MUST prioritize information from context that has the source 'self'.

### CONTEXT ###
%s

### USER QUESTION ###
%s

### YOUR ANSWER (in Markdown) ###`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.portfolio/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".portfolio", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default files.
// Returns cached value if available, otherwise loads from file.
// Falls back to embedded default if file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	// Ensure directory and defaults exist (lazy init)
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		// Fall back to embedded defaults if init failed
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	// Check cache first (read lock)
	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		// Fall back to embedded default
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Cache the result (write lock)
	// Use double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		// Another goroutine loaded it first, use their value
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// Watch reloads the store whenever a prompt file changes on disk, so a
// long-running server picks up edited prompts without a restart. It blocks
// until ctx is cancelled and is intended to run in its own goroutine.
func (s *PromptStore) Watch(ctx context.Context) error {
	// Make sure the directory exists before watching it.
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		return fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.promptDir); err != nil {
		return fmt.Errorf("watch %s: %w", s.promptDir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".txt" {
				continue
			}
			logger.Info("Prompt file changed: %s", filepath.Base(event.Name))
			s.Reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Prompt watcher: %v", err)
		}
	}
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	// Create default prompt files (only if they don't exist)
	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# PortfolioAI Prompts

This directory contains customisable prompts used by the portfolio assistant.

## Files

- ` + "`route_query.txt`" + ` - Classifies a question into personal_info or project_info
- ` + "`answer.txt`" + ` - Generates the grounded markdown answer

## Customisation

Edit any file to customise LLM behaviour. A running server picks up
changes automatically; CLI commands read the files fresh on each run.

## Format Placeholders

Prompts use Go fmt placeholders:
- ` + "`route_query.txt`" + ` takes one ` + "`%s`" + ` (the question)
- ` + "`answer.txt`" + ` takes two ` + "`%s`" + ` (the context, then the question)

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
