package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/attendance-recap/internal/domain/employee"
)

// GetByID implements employee.Directory.
func (c *Client) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	endpoint := c.employeeURL + "/api/employee/" + url.PathEscape(id)

	var found apiEmployee
	if err := c.getData(ctx, endpoint, &found); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
		}
		if errors.Is(err, ErrEmptyData) {
			return employee.Employee{}, fmt.Errorf("%w: %s", employee.ErrEmployeeNotFound, id)
		}
		return employee.Employee{}, err
	}
	return found.toEmployee(), nil
}

// Count implements employee.Directory. Records are counted, not decoded,
// so one malformed employee does not fail the headcount.
func (c *Client) Count(ctx context.Context) (int, error) {
	var all []json.RawMessage
	if err := c.getData(ctx, c.employeeURL+"/api/employee/all", &all); err != nil {
		return 0, err
	}
	return len(all), nil
}

// Headcount implements attendance.HeadcountSource.
func (c *Client) Headcount(ctx context.Context) (int, error) {
	return c.Count(ctx)
}

// EmployeeName implements attendance.NameResolver.
func (c *Client) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	emp, err := c.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	return emp.Name, nil
}
