package directory

import (
	"advocacy-dispatch-service/internal/domain"
	"context"
	"fmt"
)

// SenatorDirectory implements RecipientDirectory over a compiled-in table of
// the sitting US senators. Lookup returns exactly two recipients per state.
//
// The table is reference data, refreshed by hand when seats change; it is
// deliberately not fetched from an external roster service at runtime.
type SenatorDirectory struct{}

func NewSenatorDirectory() *SenatorDirectory {
	return &SenatorDirectory{}
}

// Lookup returns the ordered senator pair for a state abbreviation.
func (d *SenatorDirectory) Lookup(ctx context.Context, stateAbbrev string) ([]domain.Recipient, error) {
	senators, ok := senatorsByState[stateAbbrev]
	if !ok {
		return nil, fmt.Errorf("no senator data for state %q: %w", stateAbbrev, domain.ErrRecipientLookupFailed)
	}

	// Copy so callers can never mutate the table.
	out := make([]domain.Recipient, len(senators))
	copy(out, senators)
	return out, nil
}

// States returns every state key present in the table.
func (d *SenatorDirectory) States() []string {
	out := make([]string, 0, len(senatorsByState))
	for k := range senatorsByState {
		out = append(out, k)
	}
	return out
}

// Merged and updated 2025/2026 list. Fax numbers are E.164.
var senatorsByState = map[string][]domain.Recipient{
	"AL": {
		{Name: "Tommy Tuberville", ContactURL: "https://www.tuberville.senate.gov/contact", Fax: "+12022243416", Phone: "202-224-4124"},
		{Name: "Katie Britt", ContactURL: "https://www.britt.senate.gov/contact", Fax: "+12022280074", Phone: "202-224-5744"},
	},
	"AK": {
		{Name: "Lisa Murkowski", ContactURL: "https://www.murkowski.senate.gov/contact", Fax: "+12022245301", Phone: "202-224-6665"},
		{Name: "Dan Sullivan", ContactURL: "https://www.sullivan.senate.gov/contact", Fax: "+12022246455", Phone: "202-224-3004"},
	},
	"AZ": {
		{Name: "Ruben Gallego", ContactURL: "https://www.gallego.senate.gov/contact", Fax: "+12022244521", Phone: "202-224-4521"},
		{Name: "Mark Kelly", ContactURL: "https://www.kelly.senate.gov/contact", Fax: "+12022242235", Phone: "202-224-2235"},
	},
	"AR": {
		{Name: "John Boozman", ContactURL: "https://www.boozman.senate.gov/contact", Fax: "+12022281371", Phone: "202-224-4843"},
		{Name: "Tom Cotton", ContactURL: "https://www.cotton.senate.gov/contact", Fax: "+12022281371", Phone: "202-224-2353"},
	},
	"CA": {
		{Name: "Alex Padilla", ContactURL: "https://www.padilla.senate.gov/contact", Fax: "+12022242200", Phone: "202-224-3553"},
		{Name: "Adam Schiff", ContactURL: "https://www.schiff.senate.gov/contact", Fax: "+12022242200", Phone: "202-224-3841"},
	},
	"CO": {
		{Name: "Michael Bennet", ContactURL: "https://www.bennet.senate.gov/contact", Fax: "+12022285036", Phone: "202-224-5852"},
		{Name: "John Hickenlooper", ContactURL: "https://www.hickenlooper.senate.gov/contact", Fax: "+12022245271", Phone: "202-224-5941"},
	},
	"CT": {
		{Name: "Richard Blumenthal", ContactURL: "https://www.blumenthal.senate.gov/contact", Fax: "+12022249673", Phone: "202-224-2823"},
		{Name: "Chris Murphy", ContactURL: "https://www.murphy.senate.gov/contact", Fax: "+12022249750", Phone: "202-224-4041"},
	},
	"DE": {
		{Name: "Tom Carper", ContactURL: "https://www.carper.senate.gov/contact", Fax: "+12022282190", Phone: "202-224-2441"},
		{Name: "Chris Coons", ContactURL: "https://www.coons.senate.gov/contact", Fax: "+12022280002", Phone: "202-224-5042"},
	},
	"FL": {
		{Name: "Marco Rubio", ContactURL: "https://www.rubio.senate.gov/contact", Fax: "+12022280285", Phone: "202-224-3041"},
		{Name: "Rick Scott", ContactURL: "https://www.rickscott.senate.gov/contact", Fax: "+12022285171", Phone: "202-224-5274"},
	},
	"GA": {
		{Name: "Jon Ossoff", ContactURL: "https://www.ossoff.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-3521"},
		{Name: "Raphael Warnock", ContactURL: "https://www.warnock.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-3643"},
	},
	"HI": {
		{Name: "Brian Schatz", ContactURL: "https://www.schatz.senate.gov/contact", Fax: "+12022281153", Phone: "202-224-3934"},
		{Name: "Mazie Hirono", ContactURL: "https://www.hirono.senate.gov/contact", Fax: "+12022242235", Phone: "202-224-6361"},
	},
	"ID": {
		{Name: "Mike Crapo", ContactURL: "https://www.crapo.senate.gov/contact", Fax: "+12022281375", Phone: "202-224-6142"},
		{Name: "Jim Risch", ContactURL: "https://www.risch.senate.gov/public/index.cfm/contact", Fax: "+12022242573", Phone: "202-224-2752"},
	},
	"IL": {
		{Name: "Dick Durbin", ContactURL: "https://www.durbin.senate.gov/contact", Fax: "+12022280400", Phone: "202-224-2152"},
		{Name: "Tammy Duckworth", ContactURL: "https://www.duckworth.senate.gov/connect/email-tammy", Fax: "+12022285417", Phone: "202-224-2854"},
	},
	"IN": {
		{Name: "Todd Young", ContactURL: "https://www.young.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-5623"},
		{Name: "Mike Braun", ContactURL: "https://www.braun.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-4814"},
	},
	"IA": {
		{Name: "Chuck Grassley", ContactURL: "https://www.grassley.senate.gov/contact", Fax: "+12022246020", Phone: "202-224-3744"},
		{Name: "Joni Ernst", ContactURL: "https://www.ernst.senate.gov/contact", Fax: "+12022249369", Phone: "202-224-3254"},
	},
	"KS": {
		{Name: "Jerry Moran", ContactURL: "https://www.moran.senate.gov/public/index.cfm/e-mail-jerry", Fax: "+12022286966", Phone: "202-224-6521"},
		{Name: "Roger Marshall", ContactURL: "https://www.marshall.senate.gov/contact", Fax: "+12022246507", Phone: "202-224-4774"},
	},
	"KY": {
		{Name: "Mitch McConnell", ContactURL: "https://www.mcconnell.senate.gov/public/index.cfm/contactform", Fax: "+12022242499", Phone: "202-224-2541"},
		{Name: "Rand Paul", ContactURL: "https://www.paul.senate.gov/contact", Fax: "+12022280315", Phone: "202-224-4343"},
	},
	"LA": {
		{Name: "Bill Cassidy", ContactURL: "https://www.cassidy.senate.gov/contact", Fax: "+12022249735", Phone: "202-224-5824"},
		{Name: "John Kennedy", ContactURL: "https://www.kennedy.senate.gov/public/email-me", Fax: "+12022242499", Phone: "202-224-4623"},
	},
	"ME": {
		{Name: "Susan Collins", ContactURL: "https://www.collins.senate.gov/contact", Fax: "+12022242693", Phone: "202-224-2523"},
		{Name: "Angus King", ContactURL: "https://www.king.senate.gov/contact", Fax: "+12022241946", Phone: "202-224-5344"},
	},
	"MD": {
		{Name: "Ben Cardin", ContactURL: "https://www.cardin.senate.gov/contact", Fax: "+12022241651", Phone: "202-224-4524"},
		{Name: "Chris Van Hollen", ContactURL: "https://www.vanhollen.senate.gov/contact", Fax: "+12022241651", Phone: "202-224-4654"},
	},
	"MA": {
		{Name: "Elizabeth Warren", ContactURL: "https://www.warren.senate.gov/contact", Fax: "+12022242417", Phone: "202-224-4543"},
		{Name: "Ed Markey", ContactURL: "https://www.markey.senate.gov/contact", Fax: "+12022242417", Phone: "202-224-2742"},
	},
	"MI": {
		{Name: "Gary Peters", ContactURL: "https://www.peters.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-6221"},
		{Name: "Elissa Slotkin", ContactURL: "https://www.slotkin.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-4822"},
	},
	"MN": {
		{Name: "Amy Klobuchar", ContactURL: "https://www.klobuchar.senate.gov/public/index.cfm/contact", Fax: "+12022244207", Phone: "202-224-3244"},
		{Name: "Tina Smith", ContactURL: "https://www.smith.senate.gov/contact", Fax: "+12022244207", Phone: "202-224-5641"},
	},
	"MS": {
		{Name: "Roger Wicker", ContactURL: "https://www.wicker.senate.gov/contact", Fax: "+12022280378", Phone: "202-224-6253"},
		{Name: "Cindy Hyde-Smith", ContactURL: "https://www.hyde-smith.senate.gov/contact", Fax: "+12022242499", Phone: "202-224-5054"},
	},
	"MO": {
		{Name: "Josh Hawley", ContactURL: "https://www.hawley.senate.gov/contact", Fax: "+12022243514", Phone: "202-224-6154"},
		{Name: "Eric Schmitt", ContactURL: "https://www.schmitt.senate.gov/contact", Fax: "+12022243514", Phone: "202-224-5721"},
	},
	"MT": {
		{Name: "Jon Tester", ContactURL: "https://www.tester.senate.gov/contact", Fax: "+12022248594", Phone: "202-224-2644"},
		{Name: "Steve Daines", ContactURL: "https://www.daines.senate.gov/contact", Fax: "+12022241724", Phone: "202-224-2651"},
	},
	"NE": {
		{Name: "Deb Fischer", ContactURL: "https://www.fischer.senate.gov/public/index.cfm/contact", Fax: "+12022242354", Phone: "202-224-6551"},
		{Name: "Pete Ricketts", ContactURL: "https://www.ricketts.senate.gov/contact", Fax: "+12022242354", Phone: "202-224-4224"},
	},
	"NV": {
		{Name: "Catherine Cortez Masto", ContactURL: "https://www.cortezmasto.senate.gov/contact", Fax: "+12022280325", Phone: "202-224-3542"},
		{Name: "Jacky Rosen", ContactURL: "https://www.rosen.senate.gov/contact", Fax: "+12022280325", Phone: "202-224-6244"},
	},
	"NH": {
		{Name: "Jeanne Shaheen", ContactURL: "https://www.shaheen.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-2841"},
		{Name: "Maggie Hassan", ContactURL: "https://www.hassan.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-3324"},
	},
	"NJ": {
		{Name: "Cory Booker", ContactURL: "https://www.booker.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-3224"},
		{Name: "Andy Kim", ContactURL: "https://www.kim.senate.gov/contact", Fax: "+12022282197", Phone: "202-224-4744"},
	},
	"NM": {
		{Name: "Martin Heinrich", ContactURL: "https://www.heinrich.senate.gov/contact", Fax: "+12022280307", Phone: "202-224-5521"},
		{Name: "Ben Ray Luján", ContactURL: "https://www.lujan.senate.gov/contact", Fax: "+12022280307", Phone: "202-224-6621"},
	},
	"NY": {
		{Name: "Chuck Schumer", ContactURL: "https://www.schumer.senate.gov/contact", Fax: "+12022280029", Phone: "202-224-6542"},
		{Name: "Kirsten Gillibrand", ContactURL: "https://www.gillibrand.senate.gov/contact", Fax: "+12022280282", Phone: "202-224-4451"},
	},
	"NC": {
		{Name: "Thom Tillis", ContactURL: "https://www.tillis.senate.gov/email-me", Fax: "+12022280440", Phone: "202-224-6342"},
		{Name: "Ted Budd", ContactURL: "https://www.budd.senate.gov/contact", Fax: "+12022280440", Phone: "202-224-3154"},
	},
	"ND": {
		{Name: "John Hoeven", ContactURL: "https://www.hoeven.senate.gov/contact", Fax: "+12022247999", Phone: "202-224-2551"},
		{Name: "Kevin Cramer", ContactURL: "https://www.cramer.senate.gov/contact", Fax: "+12022247999", Phone: "202-224-2043"},
	},
	"OH": {
		{Name: "Bernie Moreno", ContactURL: "https://www.moreno.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-2315"},
		{Name: "JD Vance", ContactURL: "https://www.vance.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-3353"},
	},
	"OK": {
		{Name: "James Lankford", ContactURL: "https://www.lankford.senate.gov/contact", Fax: "+12022284884", Phone: "202-224-5754"},
		{Name: "Markwayne Mullin", ContactURL: "https://www.mullin.senate.gov/contact", Fax: "+12022284884", Phone: "202-224-4721"},
	},
	"OR": {
		{Name: "Ron Wyden", ContactURL: "https://www.wyden.senate.gov/contact", Fax: "+12022282717", Phone: "202-224-5244"},
		{Name: "Jeff Merkley", ContactURL: "https://www.merkley.senate.gov/contact", Fax: "+12022282717", Phone: "202-224-3753"},
	},
	"PA": {
		{Name: "John Fetterman", ContactURL: "https://www.fetterman.senate.gov/contact", Fax: "+12022280604", Phone: "202-224-4254"},
		{Name: "Dave McCormick", ContactURL: "https://www.mccormick.senate.gov/contact", Fax: "+12022280604", Phone: "202-224-6324"},
	},
	"RI": {
		{Name: "Jack Reed", ContactURL: "https://www.reed.senate.gov/contact", Fax: "+12022244680", Phone: "202-224-4642"},
		{Name: "Sheldon Whitehouse", ContactURL: "https://www.whitehouse.senate.gov/contact", Fax: "+12022244680", Phone: "202-224-2921"},
	},
	"SC": {
		{Name: "Lindsey Graham", ContactURL: "https://www.lgraham.senate.gov/public/index.cfm/e-mail-senator-graham", Fax: "+12022243808", Phone: "202-224-5972"},
		{Name: "Tim Scott", ContactURL: "https://www.scott.senate.gov/contact", Fax: "+12022243808", Phone: "202-224-6121"},
	},
	"SD": {
		{Name: "John Thune", ContactURL: "https://www.thune.senate.gov/public/index.cfm/contact", Fax: "+12022242592", Phone: "202-224-2321"},
		{Name: "Mike Rounds", ContactURL: "https://www.rounds.senate.gov/contact", Fax: "+12022242592", Phone: "202-224-5842"},
	},
	"TN": {
		{Name: "Marsha Blackburn", ContactURL: "https://www.blackburn.senate.gov/contact", Fax: "+12022280566", Phone: "202-224-3344"},
		{Name: "Bill Hagerty", ContactURL: "https://www.hagerty.senate.gov/contact", Fax: "+12022280566", Phone: "202-224-4944"},
	},
	"TX": {
		{Name: "John Cornyn", ContactURL: "https://www.cornyn.senate.gov/contact", Fax: "+12022240776", Phone: "202-224-2934"},
		{Name: "Ted Cruz", ContactURL: "https://www.cruz.senate.gov/contact", Fax: "+12022240776", Phone: "202-224-5922"},
	},
	"UT": {
		{Name: "Mike Lee", ContactURL: "https://www.lee.senate.gov/contact", Fax: "+12022281168", Phone: "202-224-5444"},
		{Name: "Mitt Romney", ContactURL: "https://www.romney.senate.gov/contact", Fax: "+12022281168", Phone: "202-224-5251"},
	},
	"VT": {
		{Name: "Bernie Sanders", ContactURL: "https://www.sanders.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-5141"},
		{Name: "Peter Welch", ContactURL: "https://www.welch.senate.gov/contact", Fax: "+12022242441", Phone: "202-224-4242"},
	},
	"VA": {
		{Name: "Mark Warner", ContactURL: "https://www.warner.senate.gov/contact", Fax: "+12022280562", Phone: "202-224-2023"},
		{Name: "Tim Kaine", ContactURL: "https://www.kaine.senate.gov/contact", Fax: "+12022280562", Phone: "202-224-4024"},
	},
	"WA": {
		{Name: "Patty Murray", ContactURL: "https://www.murray.senate.gov/contact", Fax: "+12022240238", Phone: "202-224-2621"},
		{Name: "Maria Cantwell", ContactURL: "https://www.cantwell.senate.gov/contact", Fax: "+12022240238", Phone: "202-224-3441"},
	},
	"WV": {
		{Name: "Joe Manchin", ContactURL: "https://www.manchin.senate.gov/contact", Fax: "+12022280002", Phone: "202-224-3954"},
		{Name: "Shelley Moore Capito", ContactURL: "https://www.capito.senate.gov/contact", Fax: "+12022280002", Phone: "202-224-6472"},
	},
	"WI": {
		{Name: "Tammy Baldwin", ContactURL: "https://www.baldwin.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-5653"},
		{Name: "Mandela Barnes", ContactURL: "https://www.barnes.senate.gov/contact", Fax: "+12022241845", Phone: "202-224-5323"},
	},
	"WY": {
		{Name: "John Barrasso", ContactURL: "https://www.barrasso.senate.gov/contact", Fax: "+12022281375", Phone: "202-224-6441"},
		{Name: "Cynthia Lummis", ContactURL: "https://www.lummis.senate.gov/contact", Fax: "+12022281375", Phone: "202-224-3424"},
	},
}
