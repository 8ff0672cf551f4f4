package timetable

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kvlasov/raspbot/pkg/errors"
	"github.com/kvlasov/raspbot/pkg/logger"
)

const (
	authPath     = "/tokenauth"
	studentPath  = "/UserInfo/Student"
	teacherPath  = "/UserInfo/user"
	schedulePath = "/Rasp"
)

// API is the upstream timetable surface the rest of the bot depends on.
// Schedule never fails: on any upstream problem it degrades to an empty
// payload so a user checking their schedule never sees a raw error.
type API interface {
	Authenticate(ctx context.Context, institution, username, password string) (Auth, error)
	StudentGroupID(ctx context.Context, institution, accessToken, userID string) (int, error)
	TeacherID(ctx context.Context, institution, accessToken, userID string) (int, error)
	Schedule(ctx context.Context, ref Ref) Payload
}

func NewClient(log logger.Logger, cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		http: &http.Client{Timeout: cfg.Timeout},
		cfg:  cfg,
		log:  log.With("timetable_client"),
	}
}

type Client struct {
	http *http.Client
	cfg  Config
	log  logger.Logger
}

// baseURL routes by the first character of the institution code.
// Unknown codes return "", which callers must treat as unroutable.
func (c *Client) baseURL(institution string) string {
	switch {
	case institution == "":
		return ""
	case institution[0] == 'T':
		return c.cfg.TPIBaseURL
	case institution[0] == 'D':
		return c.cfg.DSTUBaseURL
	default:
		return ""
	}
}

func (c *Client) Authenticate(ctx context.Context, institution, username, password string) (Auth, error) {
	base := c.baseURL(institution)
	if base == "" {
		return Auth{}, errors.Errorf("unroutable institution code %q", institution)
	}

	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return Auth{}, errors.WrapFail(err, "marshal credentials")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+authPath, bytes.NewReader(body))
	if err != nil {
		return Auth{}, errors.WrapFail(err, "build auth request")
	}
	req.Header.Set("Content-Type", "application/json")

	var parsed authResponse
	err = c.do(req, &parsed)
	if err != nil {
		return Auth{}, errors.WrapFail(err, "do auth request")
	}

	return Auth{
		State:       parsed.State,
		AccessToken: parsed.Data.AccessToken,
		UserID:      parsed.Data.Data.ID.String(),
	}, nil
}

func (c *Client) StudentGroupID(ctx context.Context, institution, accessToken, userID string) (int, error) {
	var parsed studentResponse

	err := c.getAuthorized(ctx, institution, studentPath, accessToken, url.Values{"studentID": {userID}}, &parsed)
	if err != nil {
		return 0, errors.WrapFail(err, "fetch student info")
	}

	id, err := strconv.Atoi(parsed.Data.Group.Item2.String())
	if err != nil {
		return 0, errors.WrapFail(err, "parse group id")
	}

	return id, nil
}

func (c *Client) TeacherID(ctx context.Context, institution, accessToken, userID string) (int, error) {
	var parsed teacherResponse

	err := c.getAuthorized(ctx, institution, teacherPath, accessToken, url.Values{"userID": {userID}}, &parsed)
	if err != nil {
		return 0, errors.WrapFail(err, "fetch teacher info")
	}

	id, err := strconv.Atoi(parsed.Data.TeacherID.String())
	if err != nil {
		return 0, errors.WrapFail(err, "parse teacher id")
	}

	return id, nil
}

// Schedule fetches the week schedule for ref. It never returns an error:
// any failure is logged and degraded to an empty payload.
func (c *Client) Schedule(ctx context.Context, ref Ref) Payload {
	base := c.baseURL(ref.Institution)
	if base == "" {
		c.log.Warnf("unroutable institution code %q", ref.Institution)
		return Payload{}
	}

	query := url.Values{"sdate": {CivilDate(Now())}}
	if ref.Teacher {
		query.Set("idTeacher", strconv.Itoa(ref.ID))
	} else {
		query.Set("idGroup", strconv.Itoa(ref.ID))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+schedulePath+"?"+query.Encode(), nil)
	if err != nil {
		c.log.Warn(errors.WrapFail(err, "build schedule request"))
		return Payload{}
	}

	var parsed scheduleResponse
	err = c.do(req, &parsed)
	if err != nil {
		c.log.Warn(errors.WrapFail(err, "fetch schedule"))
		return Payload{}
	}

	return Payload{Items: parsed.Data.Rasp, OK: true}
}

func (c *Client) getAuthorized(ctx context.Context, institution, path, accessToken string, query url.Values, to any) error {
	base := c.baseURL(institution)
	if base == "" {
		return errors.Errorf("unroutable institution code %q", institution)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.WrapFail(err, "build request")
	}
	req.AddCookie(&http.Cookie{Name: "authToken", Value: accessToken})

	return c.do(req, to)
}

func (c *Client) do(req *http.Request, to any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapFail(err, "send request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("upstream replied %s", resp.Status)
	}

	err = json.NewDecoder(resp.Body).Decode(to)
	return errors.WrapFail(err, "decode response")
}
