package workspace

import (
	"bytes"
	"context"
	"net/url"
)

const skillProviderPath = "/workspaces/current/tool-provider/skill"

// ListSkillProviders returns every installed skill provider.
func (c *Client) ListSkillProviders(ctx context.Context) ([]SkillProvider, error) {
	var providers []SkillProvider
	resp, err := c.request(ctx).
		SetResult(&providers).
		Get(skillProviderPath + "/list")
	if err := finish("list skill providers", resp, err); err != nil {
		return nil, err
	}
	return providers, nil
}

// GetSkillProvider fetches one provider's full detail. A 404 satisfies
// errors.Is(err, ErrNotFound).
func (c *Client) GetSkillProvider(ctx context.Context, id string) (*SkillProviderDetail, error) {
	var detail SkillProviderDetail
	resp, err := c.request(ctx).
		SetResult(&detail).
		Get(skillProviderPath + "/" + url.PathEscape(id))
	if err := finish("get skill provider", resp, err); err != nil {
		return nil, err
	}
	return &detail, nil
}

// InstallSkill installs a skill from a git repository or a server-local
// path, per req.SourceType.
func (c *Client) InstallSkill(ctx context.Context, req InstallSkillRequest) (*InstallResult, error) {
	var result InstallResult
	resp, err := c.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post(skillProviderPath + "/install")
	if err := finish("install skill", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadSkill installs a skill from a zip archive. The archive bytes go up
// as the multipart field "file"; a non-empty name sets the display name.
func (c *Client) UploadSkill(ctx context.Context, filename string, content []byte, name string) (*InstallResult, error) {
	var result InstallResult
	req := c.request(ctx).
		SetFileReader("file", filename, bytes.NewReader(content)).
		SetResult(&result)
	if name != "" {
		req.SetFormData(map[string]string{"name": name})
	}
	resp, err := req.Post(skillProviderPath + "/upload")
	if err := finish("upload skill", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSkillProvider removes a provider. Deleting an unknown id returns
// ErrNotFound.
func (c *Client) DeleteSkillProvider(ctx context.Context, id string) error {
	var result DeleteResult
	resp, err := c.request(ctx).
		SetResult(&result).
		Delete(skillProviderPath + "/" + url.PathEscape(id))
	return finish("delete skill provider", resp, err)
}

// ValidateSkillContent asks the server to validate raw SKILL.md content.
// Validation problems come back inside the result, not as an error.
func (c *Client) ValidateSkillContent(ctx context.Context, content string) (*ValidationResult, error) {
	var result ValidationResult
	resp, err := c.request(ctx).
		SetBody(map[string]string{"content": content}).
		SetResult(&result).
		Post(skillProviderPath + "/validate")
	if err := finish("validate skill content", resp, err); err != nil {
		return nil, err
	}
	return &result, nil
}
