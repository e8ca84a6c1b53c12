// Package commands defines the bmi CLI.
//
// Commands
//
//   - calc    Calculate BMI from --height/--weight/--units
//   - prompt  Fill in the form interactively (terminal only)
//   - serve   Run the HTTP server; takes the same flags as the server binary
//
// calc exits non-zero after printing the validation message when input is
// rejected. prompt keeps one form.State across rounds, so the unit choice
// carries over and Reset clears the fields between calculations.
package commands
