package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/verba/internal/export"
	"github.com/nguyentantai21042004/verba/internal/models"
)

// writeOutputs saves the markdown export, and the docx export when enabled,
// next to each other in the output folder, named after the source file.
func (p *implProcessor) writeOutputs(ctx context.Context, sourcePath string, sess models.Session) ([]string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	mdPath := filepath.Join(p.cfg.Paths.Output, base+".md")
	if err := os.WriteFile(mdPath, []byte(export.Markdown(sess)), 0644); err != nil {
		return nil, fmt.Errorf("write markdown: %w", err)
	}
	outputs := []string{mdPath}

	if p.cfg.Export.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, base+".docx")
		if err := export.WriteDocx(sess, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
		} else {
			outputs = append(outputs, docxPath)
		}
	}

	return outputs, nil
}

// moveToArchived moves the processed source file out of the inbox
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(dest, ext), time.Now().Format("20060102-150405"), ext)
	}

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		// Rename fails across devices, fall back to copy and remove
		if err := copyFile(path, dest); err != nil {
			return fmt.Errorf("move to archived: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove source after copy: %w", err)
		}
	}

	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
