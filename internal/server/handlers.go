package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/deskbar/internal/resolve"
	"github.com/mj1618/deskbar/internal/solutions"
)

// itemInfo is the per-item shape of the items tool output.
type itemInfo struct {
	ID        string       `yaml:"id"`
	Label     string       `yaml:"label,omitempty"`
	Kind      string       `yaml:"kind"`
	Available bool         `yaml:"available"`
	Buttons   []buttonInfo `yaml:"buttons,omitempty"`
}

type buttonInfo struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
	Value string `yaml:"value"`
}

// resolveInfo is the resolve tool output.
type resolveInfo struct {
	Found        bool   `yaml:"found"`
	Kind         string `yaml:"kind,omitempty"`
	Path         string `yaml:"path,omitempty"`
	TrailingArgs string `yaml:"trailingArgs,omitempty"`
}

func toText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal: %v", err)
	}
	return string(b)
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func (s *Server) handleItems(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	infos := make([]itemInfo, 0, len(s.cfg.Bar.Items))
	for _, item := range s.cfg.Bar.Items {
		info := itemInfo{ID: item.ID, Label: item.Label}
		if item.Action != nil {
			info.Kind = string(item.Action.Kind)
			info.Available = item.Action.IsAvailable()
		} else {
			info.Kind = "multi"
			info.Available = true
			for _, b := range item.Buttons {
				if !b.Action.IsAvailable() {
					info.Available = false
				}
				info.Buttons = append(info.Buttons, buttonInfo{
					ID:    b.ID,
					Label: b.Label,
					Value: b.Value,
				})
			}
		}
		infos = append(infos, info)
	}
	return mcp.NewToolResultText(toText(infos)), nil
}

func (s *Server) handleInvoke(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	itemID := stringParam(params, "item")
	button := stringParam(params, "button")
	var toggle *bool
	if v, ok := params["state"].(bool); ok {
		toggle = &v
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	item, err := s.cfg.Bar.Find(itemID)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := item.Invoke(s.provider, button, toggle); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(map[string]interface{}{
		"ok":   true,
		"item": itemID,
	})), nil
}

func (s *Server) handleResolve(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exe := stringParam(request.GetArguments(), "exe")
	if exe == "" {
		return mcp.NewToolResultError("exe parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	target, ok := resolve.Resolve(s.provider, exe)
	if !ok {
		return mcp.NewToolResultText(toText(resolveInfo{Found: false})), nil
	}
	return mcp.NewToolResultText(toText(resolveInfo{
		Found:        true,
		Kind:         kindName(target.Kind),
		Path:         target.Path,
		TrailingArgs: target.TrailingArgs,
	})), nil
}

func kindName(k resolve.Kind) string {
	switch k {
	case resolve.KindPackage:
		return "package"
	case resolve.KindShellAlias:
		return "shell-alias"
	default:
		return "exe"
	}
}

func (s *Server) lookupSetting(id string) (*solutions.Setting, error) {
	if s.cfg.Solutions == nil {
		return nil, fmt.Errorf("no solutions catalogue configured")
	}
	return s.cfg.Solutions.GetSetting(id)
}

func (s *Server) handleSettingGet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := stringParam(request.GetArguments(), "id")

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	setting, err := s.lookupSetting(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := setting.Get(s.provider)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(map[string]interface{}{
		"id":    id,
		"value": value,
	})), nil
}

func (s *Server) handleSettingSet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id")
	state, ok := params["state"].(bool)
	if !ok {
		return mcp.NewToolResultError("state parameter is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	setting, err := s.lookupSetting(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := setting.Set(s.provider, state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(map[string]interface{}{
		"ok": true,
		"id": id,
	})), nil
}

func (s *Server) handleSettingAdjust(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := stringParam(params, "id")
	delta := 1
	if v, ok := params["delta"].(float64); ok {
		delta = int(v)
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	setting, err := s.lookupSetting(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := setting.Increment(s.provider, delta); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(toText(map[string]interface{}{
		"ok":    true,
		"id":    id,
		"delta": delta,
	})), nil
}
